package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/internal/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVerbRepository implements domain.VerbRepository using GORM.
type GormVerbRepository struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewGormVerbRepository(db *gorm.DB, v *validation.Validator) *GormVerbRepository {
	if v == nil {
		v = validation.New()
	}
	return &GormVerbRepository{db: db, validator: v}
}

func (r *GormVerbRepository) Create(ctx context.Context, input domain.VerbInput, opts domain.WriteOptions) (*domain.Verb, error) {
	verb := &domain.Verb{
		Name:        strings.TrimSpace(input.Name),
		Translation: strings.TrimSpace(input.Translation),
		Example:     strings.TrimSpace(input.Example),
		CreatedByID: opts.CurrentUser.IDPtr(),
		UpdatedByID: opts.CurrentUser.IDPtr(),
	}

	db, err := conn(ctx, r.db, opts.Tx)
	if err != nil {
		return nil, err
	}
	if err := db.Create(verb).Error; err != nil {
		return nil, translateError(err)
	}
	return verb, nil
}

func (r *GormVerbRepository) Update(ctx context.Context, id uuid.UUID, input domain.VerbInput, opts domain.WriteOptions) (*domain.Verb, error) {
	verb, err := r.FindByID(ctx, id, opts.Tx)
	if err != nil {
		return nil, err
	}

	verb.Name = strings.TrimSpace(input.Name)
	verb.Translation = strings.TrimSpace(input.Translation)
	verb.Example = strings.TrimSpace(input.Example)
	verb.UpdatedByID = opts.CurrentUser.IDPtr()

	db, err := conn(ctx, r.db, opts.Tx)
	if err != nil {
		return nil, err
	}
	err = db.
		Model(verb).
		Select("name", "translation", "example", "updated_by_id").
		Updates(verb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return verb, nil
}

func (r *GormVerbRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID, opts domain.WriteOptions) error {
	if len(ids) == 0 {
		return nil
	}
	db, err := conn(ctx, r.db, opts.Tx)
	if err != nil {
		return err
	}
	return db.
		Where("id IN ?", ids).
		Delete(&domain.Verb{}).Error
}

func (r *GormVerbRepository) Remove(ctx context.Context, id uuid.UUID, opts domain.WriteOptions) error {
	db, err := conn(ctx, r.db, opts.Tx)
	if err != nil {
		return err
	}
	result := db.Delete(&domain.Verb{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVerbNotFound
	}
	return nil
}

func (r *GormVerbRepository) FindByID(ctx context.Context, id uuid.UUID, tx domain.Tx) (*domain.Verb, error) {
	db, err := conn(ctx, r.db, tx)
	if err != nil {
		return nil, err
	}
	var verb domain.Verb
	if err := db.First(&verb, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &verb, nil
}

func (r *GormVerbRepository) List(ctx context.Context, page, perPage int) ([]domain.Verb, int64, error) {
	var verbs []domain.Verb
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Verb{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	if err := query.
		Offset(offset).Limit(perPage).
		Order("name ASC").
		Find(&verbs).Error; err != nil {
		return nil, 0, err
	}

	return verbs, total, nil
}

// BulkImport applies rows in order inside opts.Tx, so a later row sees the
// effect of an earlier one with the same name.
func (r *GormVerbRepository) BulkImport(ctx context.Context, rows []domain.Row, opts domain.BulkImportOptions) (*domain.ImportResult, error) {
	db, err := conn(ctx, r.db, opts.Tx)
	if err != nil {
		return nil, err
	}
	result := newImportResult()

	for i, row := range rows {
		input := inputFromRow(row)
		if opts.Validate {
			if err := r.validator.Row(input, i+1); err != nil {
				return nil, err
			}
		}
		if input.Name == "" {
			recordOutcome(result, outcomeSkipped, domain.Verb{})
			continue
		}

		var existing domain.Verb
		found := db.Unscoped().
			Where("LOWER(name) = ?", strings.ToLower(input.Name)).
			Limit(1).
			Find(&existing)
		if found.Error != nil {
			return nil, found.Error
		}

		if found.RowsAffected == 0 {
			outcome, err := r.insertImported(db, input, opts)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			recordOutcome(result, outcome, domain.Verb{})
			continue
		}

		if existing.DeletedAt.Valid {
			if err := r.restore(db, &existing, input, opts.CurrentUser); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			recordOutcome(result, outcomeCreated, existing)
			continue
		}

		outcome, changes := mergeInput(existing, input)
		if outcome == outcomeSkipped {
			if !opts.IgnoreDuplicates {
				return nil, fmt.Errorf("row %d: %w", i+1, domain.ErrDuplicateVerb)
			}
			recordOutcome(result, outcome, existing)
			continue
		}

		updates := map[string]interface{}{"updated_by_id": opts.CurrentUser.IDPtr()}
		for column, value := range changes {
			updates[column] = value
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, translateError(err))
		}
		applyChanges(&existing, changes)
		existing.UpdatedByID = opts.CurrentUser.IDPtr()
		recordOutcome(result, outcome, existing)
	}

	return result, nil
}

func (r *GormVerbRepository) insertImported(db *gorm.DB, input domain.VerbInput, opts domain.BulkImportOptions) (importOutcome, error) {
	verb := &domain.Verb{
		Name:        input.Name,
		Translation: input.Translation,
		Example:     input.Example,
		CreatedByID: opts.CurrentUser.IDPtr(),
		UpdatedByID: opts.CurrentUser.IDPtr(),
	}

	// Names are unique case-insensitively through idx_verbs_name_lower, an
	// expression index, so the conflict target is left for Postgres to infer.
	if opts.IgnoreDuplicates {
		created := db.Clauses(clause.OnConflict{DoNothing: true}).Create(verb)
		if created.Error != nil {
			return outcomeSkipped, translateError(created.Error)
		}
		if created.RowsAffected == 0 {
			return outcomeSkipped, nil
		}
		return outcomeCreated, nil
	}

	if err := db.Create(verb).Error; err != nil {
		return outcomeSkipped, translateError(err)
	}
	return outcomeCreated, nil
}

func (r *GormVerbRepository) restore(db *gorm.DB, verb *domain.Verb, input domain.VerbInput, user domain.User) error {
	verb.Translation = input.Translation
	verb.Example = input.Example
	verb.UpdatedByID = user.IDPtr()
	verb.DeletedAt = gorm.DeletedAt{}

	return db.Unscoped().Model(verb).Updates(map[string]interface{}{
		"translation":   verb.Translation,
		"example":       verb.Example,
		"updated_by_id": verb.UpdatedByID,
		"deleted_at":    nil,
	}).Error
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrVerbNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateVerb
	default:
		return err
	}
}
