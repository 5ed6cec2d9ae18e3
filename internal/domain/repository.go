package domain

import (
	"context"

	"github.com/google/uuid"
)

// Tx is a transaction handle owned by exactly one service call.
type Tx interface {
	Commit() error
	Rollback() error
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Upload yields the raw bytes of an uploaded file.
type Upload interface {
	Read(ctx context.Context) ([]byte, error)
}

// UploadFunc adapts a plain function to Upload.
type UploadFunc func(ctx context.Context) ([]byte, error)

func (f UploadFunc) Read(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

type WriteOptions struct {
	Tx          Tx
	CurrentUser User
}

type BulkImportOptions struct {
	Tx               Tx
	CurrentUser      User
	IgnoreDuplicates bool
	Validate         bool
}

type VerbRepository interface {
	// Writes
	Create(ctx context.Context, input VerbInput, opts WriteOptions) (*Verb, error)
	Update(ctx context.Context, id uuid.UUID, input VerbInput, opts WriteOptions) (*Verb, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID, opts WriteOptions) error
	Remove(ctx context.Context, id uuid.UUID, opts WriteOptions) error
	BulkImport(ctx context.Context, rows []Row, opts BulkImportOptions) (*ImportResult, error)

	// Reads. tx may be nil.
	FindByID(ctx context.Context, id uuid.UUID, tx Tx) (*Verb, error)
	List(ctx context.Context, page, perPage int) ([]Verb, int64, error)
}

type AuditRepository interface {
	// AddAuditEntry is idempotent on EventID.
	AddAuditEntry(ctx context.Context, entry AuditEntry) error
	ListAuditEntries(ctx context.Context, limit int) ([]AuditEntry, error)
}

// AuditPublisher hands a committed change to the audit trail. It must not
// block the caller.
type AuditPublisher interface {
	PublishAudit(ctx context.Context, entry AuditEntry) error
}
