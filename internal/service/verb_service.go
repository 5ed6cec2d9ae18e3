package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/charset"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/pkg/logger"
)

const (
	defaultPerPage    = 10
	maxPerPage        = 100
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type VerbService interface {
	Create(ctx context.Context, input domain.VerbInput, user domain.User) (*domain.Verb, error)
	Update(ctx context.Context, id uuid.UUID, input domain.VerbInput, user domain.User) (*domain.Verb, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID, user domain.User) error
	Remove(ctx context.Context, id uuid.UUID, user domain.User) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Verb, error)
	List(ctx context.Context, page, perPage int) (*domain.VerbPage, error)
	BulkImport(ctx context.Context, upload domain.Upload, user domain.User) (*domain.ImportResult, error)
	ListAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type verbService struct {
	repo      domain.VerbRepository
	txManager domain.TxManager
	audit     domain.AuditRepository
	publisher domain.AuditPublisher
	logger    *logger.Logger
	csvOpts   []CSVOption
}

func NewVerbService(
	repo domain.VerbRepository,
	txManager domain.TxManager,
	audit domain.AuditRepository,
	publisher domain.AuditPublisher,
	log *logger.Logger,
	csvOpts ...CSVOption,
) VerbService {
	return &verbService{
		repo:      repo,
		txManager: txManager,
		audit:     audit,
		publisher: publisher,
		logger:    log,
		csvOpts:   csvOpts,
	}
}

// inTx begins a transaction, runs fn and commits. When fn fails the
// transaction is rolled back and fn's error is returned as is; a failed
// rollback is only logged.
func (s *verbService) inTx(ctx context.Context, fn func(tx domain.Tx) error) error {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to begin transaction", "error", err)
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error(ctx, "Failed to roll back transaction",
				"error", rbErr,
				"cause", err.Error(),
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "Failed to commit transaction", "error", err)
		return err
	}
	return nil
}

func (s *verbService) Create(ctx context.Context, input domain.VerbInput, user domain.User) (*domain.Verb, error) {
	var verb *domain.Verb
	err := s.inTx(ctx, func(tx domain.Tx) error {
		var err error
		verb, err = s.repo.Create(ctx, input, domain.WriteOptions{Tx: tx, CurrentUser: user})
		return err
	})
	if err != nil {
		s.logger.Warn(ctx, "Failed to create verb", "name", input.Name, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Verb created", "verb_id", verb.ID)
	s.publish(ctx, domain.AuditActionCreated, user, []uuid.UUID{verb.ID}, verb.Name)
	return verb, nil
}

func (s *verbService) Update(ctx context.Context, id uuid.UUID, input domain.VerbInput, user domain.User) (*domain.Verb, error) {
	var verb *domain.Verb
	err := s.inTx(ctx, func(tx domain.Tx) error {
		if _, err := s.repo.FindByID(ctx, id, tx); err != nil {
			return err
		}
		var err error
		verb, err = s.repo.Update(ctx, id, input, domain.WriteOptions{Tx: tx, CurrentUser: user})
		return err
	})
	if err != nil {
		s.logger.Warn(ctx, "Failed to update verb", "verb_id", id, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Verb updated", "verb_id", id)
	s.publish(ctx, domain.AuditActionUpdated, user, []uuid.UUID{id}, verb.Name)
	return verb, nil
}

func (s *verbService) DeleteByIDs(ctx context.Context, ids []uuid.UUID, user domain.User) error {
	err := s.inTx(ctx, func(tx domain.Tx) error {
		return s.repo.DeleteByIDs(ctx, ids, domain.WriteOptions{Tx: tx, CurrentUser: user})
	})
	if err != nil {
		s.logger.Warn(ctx, "Failed to delete verbs", "count", len(ids), "error", err)
		return err
	}

	s.logger.Info(ctx, "Verbs deleted", "count", len(ids))
	s.publish(ctx, domain.AuditActionDeleted, user, ids, fmt.Sprintf("deleted=%d", len(ids)))
	return nil
}

func (s *verbService) Remove(ctx context.Context, id uuid.UUID, user domain.User) error {
	err := s.inTx(ctx, func(tx domain.Tx) error {
		return s.repo.Remove(ctx, id, domain.WriteOptions{Tx: tx, CurrentUser: user})
	})
	if err != nil {
		s.logger.Warn(ctx, "Failed to remove verb", "verb_id", id, "error", err)
		return err
	}

	s.logger.Info(ctx, "Verb removed", "verb_id", id)
	s.publish(ctx, domain.AuditActionDeleted, user, []uuid.UUID{id}, "deleted=1")
	return nil
}

func (s *verbService) Get(ctx context.Context, id uuid.UUID) (*domain.Verb, error) {
	return s.repo.FindByID(ctx, id, nil)
}

// List clamps page and perPage and reports the values it used.
func (s *verbService) List(ctx context.Context, page, perPage int) (*domain.VerbPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	verbs, total, err := s.repo.List(ctx, page, perPage)
	if err != nil {
		s.logger.Error(ctx, "Failed to list verbs", "error", err)
		return nil, err
	}
	if verbs == nil {
		verbs = []domain.Verb{}
	}
	return &domain.VerbPage{
		Items:   verbs,
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}, nil
}

// BulkImport reads the upload, decodes and parses it completely, then hands
// every row to the repository inside one transaction. Any failure rolls the
// transaction back and returns the original error.
func (s *verbService) BulkImport(ctx context.Context, upload domain.Upload, user domain.User) (*domain.ImportResult, error) {
	ctx = logger.WithImportID(ctx, uuid.New().String())

	phase := domain.ImportPhaseStarted
	s.logPhase(ctx, phase)

	began := false
	var result *domain.ImportResult
	err := s.inTx(ctx, func(tx domain.Tx) error {
		began = true

		raw, err := upload.Read(ctx)
		if err != nil {
			return err
		}
		phase = domain.ImportPhaseUploaded
		s.logPhase(ctx, phase, "bytes", len(raw))

		text, encoding := charset.Detect(raw)
		phase = domain.ImportPhaseDecoded
		s.logPhase(ctx, phase, "encoding", encoding)

		rows, err := CollectRows(ParseCSV(text, s.csvOpts...))
		if err != nil {
			return err
		}
		phase = domain.ImportPhaseParsed
		s.logPhase(ctx, phase, "rows", len(rows))

		result, err = s.repo.BulkImport(ctx, rows, domain.BulkImportOptions{
			Tx:               tx,
			CurrentUser:      user,
			IgnoreDuplicates: true,
			Validate:         true,
		})
		if err != nil {
			return err
		}
		phase = domain.ImportPhasePersisted
		s.logPhase(ctx, phase)
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "Import failed",
			"phase", domain.ImportPhaseFailed,
			"last_phase", phase,
			"error", err,
		)
		if began {
			s.logPhase(ctx, domain.ImportPhaseRolledBack)
		}
		return nil, err
	}

	s.logPhase(ctx, domain.ImportPhaseCommitted,
		"created", result.CreatedCount,
		"updated", result.UpdatedCount,
		"enriched", result.EnrichedCount,
		"skipped", result.SkippedCount,
	)

	ids := make([]uuid.UUID, 0, len(result.EnrichedVerbs))
	for _, v := range result.EnrichedVerbs {
		ids = append(ids, v.ID)
	}
	s.publish(ctx, domain.AuditActionImported, user, ids, fmt.Sprintf(
		"created=%d updated=%d enriched=%d skipped=%d",
		result.CreatedCount, result.UpdatedCount, result.EnrichedCount, result.SkippedCount,
	))

	return result, nil
}

func (s *verbService) ListAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit < 1 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return s.audit.ListAuditEntries(ctx, limit)
}

func (s *verbService) logPhase(ctx context.Context, phase domain.ImportPhase, fields ...interface{}) {
	s.logger.Info(ctx, "Import phase", append([]interface{}{"phase", phase}, fields...)...)
}

// publish records a committed change on the audit trail. The write has
// already succeeded, so a publish failure is logged and otherwise ignored.
func (s *verbService) publish(ctx context.Context, action domain.AuditAction, user domain.User, ids []uuid.UUID, summary string) {
	if s.publisher == nil {
		return
	}

	verbIDs := make([]string, len(ids))
	for i, id := range ids {
		verbIDs[i] = id.String()
	}

	err := s.publisher.PublishAudit(ctx, domain.AuditEntry{
		EventID: uuid.New().String(),
		Action:  action,
		UserID:  user.IDPtr(),
		VerbIDs: strings.Join(verbIDs, ","),
		Summary: summary,
	})
	if err != nil {
		s.logger.Warn(ctx, "Failed to publish audit event",
			"action", action,
			"error", err,
		)
	}
}
