package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/internal/validation"
)

var errTxDone = errors.New("transaction already committed or rolled back")

// MemoryStore keeps verbs and audit entries in process memory. It implements
// domain.VerbRepository, domain.AuditRepository and domain.TxManager.
//
// Transactions are serialized: Begin blocks until the previous one finishes,
// and writes go to a private copy that Commit publishes.
type MemoryStore struct {
	verbs       map[uuid.UUID]domain.Verb
	audit       []domain.AuditEntry
	auditEvents map[string]bool
	nextAuditID uint
	validator   *validation.Validator
	mu          sync.RWMutex
	writeMu     sync.Mutex
	now         func() time.Time
}

func NewMemoryStore(v *validation.Validator) *MemoryStore {
	if v == nil {
		v = validation.New()
	}
	return &MemoryStore{
		verbs:       make(map[uuid.UUID]domain.Verb),
		auditEvents: make(map[string]bool),
		validator:   v,
		now:         time.Now,
	}
}

type memoryTx struct {
	store *MemoryStore
	verbs map[uuid.UUID]domain.Verb
	done  bool
}

func (t *memoryTx) Commit() error {
	if t.done {
		return errTxDone
	}
	t.done = true

	t.store.mu.Lock()
	t.store.verbs = t.verbs
	t.store.mu.Unlock()

	t.store.writeMu.Unlock()
	return nil
}

func (t *memoryTx) Rollback() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.verbs = nil
	t.store.writeMu.Unlock()
	return nil
}

func (s *MemoryStore) Begin(ctx context.Context) (domain.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()

	s.mu.RLock()
	staged := make(map[uuid.UUID]domain.Verb, len(s.verbs))
	for id, v := range s.verbs {
		staged[id] = v
	}
	s.mu.RUnlock()

	return &memoryTx{store: s, verbs: staged}, nil
}

// write runs fn against the staged verbs of tx. Without a transaction it
// opens and finishes one around fn.
func (s *MemoryStore) write(ctx context.Context, tx domain.Tx, fn func(verbs map[uuid.UUID]domain.Verb) error) error {
	if tx != nil {
		mtx, err := s.ownTx(tx)
		if err != nil {
			return err
		}
		if mtx.done {
			return errTxDone
		}
		return fn(mtx.verbs)
	}

	implicit, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(implicit.(*memoryTx).verbs); err != nil {
		_ = implicit.Rollback()
		return err
	}
	return implicit.Commit()
}

// read runs fn against the staged verbs of tx, or the committed ones.
func (s *MemoryStore) read(tx domain.Tx, fn func(verbs map[uuid.UUID]domain.Verb)) error {
	if tx != nil {
		mtx, err := s.ownTx(tx)
		if err != nil {
			return err
		}
		if !mtx.done {
			fn(mtx.verbs)
			return nil
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.verbs)
	return nil
}

func (s *MemoryStore) ownTx(tx domain.Tx) (*memoryTx, error) {
	mtx, ok := tx.(*memoryTx)
	if !ok || mtx == nil || mtx.store != s {
		return nil, fmt.Errorf("%w: %T", domain.ErrForeignTx, tx)
	}
	return mtx, nil
}

func (s *MemoryStore) Create(ctx context.Context, input domain.VerbInput, opts domain.WriteOptions) (*domain.Verb, error) {
	var created domain.Verb
	err := s.write(ctx, opts.Tx, func(verbs map[uuid.UUID]domain.Verb) error {
		name := strings.TrimSpace(input.Name)
		if _, taken := findByNameUnscoped(verbs, name); taken {
			return domain.ErrDuplicateVerb
		}
		created = s.newVerb(domain.VerbInput{
			Name:        name,
			Translation: strings.TrimSpace(input.Translation),
			Example:     strings.TrimSpace(input.Example),
		}, opts.CurrentUser)
		verbs[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *MemoryStore) Update(ctx context.Context, id uuid.UUID, input domain.VerbInput, opts domain.WriteOptions) (*domain.Verb, error) {
	var updated domain.Verb
	err := s.write(ctx, opts.Tx, func(verbs map[uuid.UUID]domain.Verb) error {
		verb, ok := verbs[id]
		if !ok || verb.DeletedAt.Valid {
			return domain.ErrVerbNotFound
		}

		name := strings.TrimSpace(input.Name)
		if other, taken := findByNameUnscoped(verbs, name); taken && other.ID != id {
			return domain.ErrDuplicateVerb
		}

		verb.Name = name
		verb.Translation = strings.TrimSpace(input.Translation)
		verb.Example = strings.TrimSpace(input.Example)
		verb.UpdatedByID = opts.CurrentUser.IDPtr()
		verb.UpdatedAt = s.now()
		verbs[id] = verb
		updated = verb
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MemoryStore) DeleteByIDs(ctx context.Context, ids []uuid.UUID, opts domain.WriteOptions) error {
	if len(ids) == 0 {
		return nil
	}
	return s.write(ctx, opts.Tx, func(verbs map[uuid.UUID]domain.Verb) error {
		for _, id := range ids {
			s.softDelete(verbs, id)
		}
		return nil
	})
}

func (s *MemoryStore) Remove(ctx context.Context, id uuid.UUID, opts domain.WriteOptions) error {
	return s.write(ctx, opts.Tx, func(verbs map[uuid.UUID]domain.Verb) error {
		if !s.softDelete(verbs, id) {
			return domain.ErrVerbNotFound
		}
		return nil
	})
}

func (s *MemoryStore) FindByID(ctx context.Context, id uuid.UUID, tx domain.Tx) (*domain.Verb, error) {
	var (
		verb  domain.Verb
		found bool
	)
	err := s.read(tx, func(verbs map[uuid.UUID]domain.Verb) {
		verb, found = verbs[id]
	})
	if err != nil {
		return nil, err
	}
	if !found || verb.DeletedAt.Valid {
		return nil, domain.ErrVerbNotFound
	}
	return &verb, nil
}

func (s *MemoryStore) List(ctx context.Context, page, perPage int) ([]domain.Verb, int64, error) {
	var live []domain.Verb
	_ = s.read(nil, func(verbs map[uuid.UUID]domain.Verb) {
		for _, v := range verbs {
			if !v.DeletedAt.Valid {
				live = append(live, v)
			}
		}
	})
	sort.Slice(live, func(i, j int) bool {
		return live[i].Name < live[j].Name
	})

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	total := len(live)
	start := (page - 1) * perPage
	end := start + perPage

	if start >= total {
		return []domain.Verb{}, int64(total), nil
	}
	if end > total {
		end = total
	}

	return live[start:end], int64(total), nil
}

func (s *MemoryStore) BulkImport(ctx context.Context, rows []domain.Row, opts domain.BulkImportOptions) (*domain.ImportResult, error) {
	result := newImportResult()

	err := s.write(ctx, opts.Tx, func(verbs map[uuid.UUID]domain.Verb) error {
		for i, row := range rows {
			input := inputFromRow(row)
			if opts.Validate {
				if err := s.validator.Row(input, i+1); err != nil {
					return err
				}
			}
			if input.Name == "" {
				recordOutcome(result, outcomeSkipped, domain.Verb{})
				continue
			}

			existing, found := findByNameUnscoped(verbs, input.Name)
			if !found {
				verb := s.newVerb(input, opts.CurrentUser)
				verbs[verb.ID] = verb
				recordOutcome(result, outcomeCreated, verb)
				continue
			}

			if existing.DeletedAt.Valid {
				existing.Translation = input.Translation
				existing.Example = input.Example
				existing.UpdatedByID = opts.CurrentUser.IDPtr()
				existing.UpdatedAt = s.now()
				existing.DeletedAt.Valid = false
				verbs[existing.ID] = existing
				recordOutcome(result, outcomeCreated, existing)
				continue
			}

			outcome, changes := mergeInput(existing, input)
			if outcome == outcomeSkipped {
				if !opts.IgnoreDuplicates {
					return fmt.Errorf("row %d: %w", i+1, domain.ErrDuplicateVerb)
				}
				recordOutcome(result, outcome, existing)
				continue
			}

			applyChanges(&existing, changes)
			existing.UpdatedByID = opts.CurrentUser.IDPtr()
			existing.UpdatedAt = s.now()
			verbs[existing.ID] = existing
			recordOutcome(result, outcome, existing)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *MemoryStore) AddAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auditEvents[entry.EventID] {
		return nil
	}
	s.nextAuditID++
	entry.ID = s.nextAuditID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.audit = append(s.audit, entry)
	s.auditEvents[entry.EventID] = true
	return nil
}

// ListAuditEntries returns the newest entries first.
func (s *MemoryStore) ListAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.AuditEntry, 0, len(s.audit))
	for i := len(s.audit) - 1; i >= 0; i-- {
		if limit > 0 && len(entries) == limit {
			break
		}
		entries = append(entries, s.audit[i])
	}
	return entries, nil
}

func (s *MemoryStore) newVerb(input domain.VerbInput, user domain.User) domain.Verb {
	now := s.now()
	return domain.Verb{
		ID:          uuid.New(),
		Name:        input.Name,
		Translation: input.Translation,
		Example:     input.Example,
		CreatedByID: user.IDPtr(),
		UpdatedByID: user.IDPtr(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *MemoryStore) softDelete(verbs map[uuid.UUID]domain.Verb, id uuid.UUID) bool {
	verb, ok := verbs[id]
	if !ok || verb.DeletedAt.Valid {
		return false
	}
	verb.DeletedAt.Time = s.now()
	verb.DeletedAt.Valid = true
	verbs[id] = verb
	return true
}

// findByNameUnscoped matches case-insensitively and includes soft-deleted
// verbs, which still hold their name.
func findByNameUnscoped(verbs map[uuid.UUID]domain.Verb, name string) (domain.Verb, bool) {
	for _, v := range verbs {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return domain.Verb{}, false
}
