package storage

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var verbColumns = []string{"id", "name", "translation", "example", "created_by_id", "updated_by_id", "created_at", "updated_at", "deleted_at"}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: NewGormLogger(logger.NewNop(), slowQueryThreshold),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return gormDB, mock
}

func TestGormVerbRepository_Create(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)
	id := uuid.New()
	user := domain.User{ID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "verbs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	verb, err := repo.Create(context.Background(), domain.VerbInput{Name: " run ", Translation: "бягам"}, domain.WriteOptions{CurrentUser: user})
	require.NoError(t, err)
	assert.Equal(t, id, verb.ID)
	assert.Equal(t, "run", verb.Name)
	assert.Equal(t, user.ID, *verb.CreatedByID)
}

func TestGormVerbRepository_FindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verbs"`)).
		WillReturnRows(sqlmock.NewRows(verbColumns))

	verb, err := repo.FindByID(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domain.ErrVerbNotFound)
	assert.Nil(t, verb)
}

func TestGormVerbRepository_FindByID_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verbs"`)).
		WillReturnRows(sqlmock.NewRows(verbColumns).
			AddRow(id.String(), "run", "бягам", "", nil, nil, now, now, nil))

	verb, err := repo.FindByID(context.Background(), id, nil)
	require.NoError(t, err)
	assert.Equal(t, "бягам", verb.Translation)
}

func TestGormVerbRepository_Remove(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "verbs" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Remove(context.Background(), uuid.New(), domain.WriteOptions{})
	assert.NoError(t, err)
}

func TestGormVerbRepository_Remove_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "verbs" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Remove(context.Background(), uuid.New(), domain.WriteOptions{})
	assert.ErrorIs(t, err, domain.ErrVerbNotFound)
}

func TestGormVerbRepository_DeleteByIDs_Empty(t *testing.T) {
	gormDB, _ := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)

	err := repo.DeleteByIDs(context.Background(), nil, domain.WriteOptions{})
	assert.NoError(t, err)
}

func TestGormVerbRepository_List(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "verbs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verbs"`)).
		WillReturnRows(sqlmock.NewRows(verbColumns).
			AddRow(uuid.New().String(), "eat", "ям", "", nil, nil, now, now, nil).
			AddRow(uuid.New().String(), "run", "бягам", "", nil, nil, now, now, nil))

	verbs, total, err := repo.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, verbs, 2)
}

func TestGormVerbRepository_BulkImport_InTransaction(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)
	txManager := NewGormTxManager(gormDB)
	ctx := context.Background()
	now := time.Now()
	existingID := uuid.New()

	mock.ExpectBegin()
	// eat: absent, inserted.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verbs" WHERE LOWER(name) = $1`)).
		WillReturnRows(sqlmock.NewRows(verbColumns))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "verbs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	// run: present without example, enriched.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verbs" WHERE LOWER(name) = $1`)).
		WillReturnRows(sqlmock.NewRows(verbColumns).
			AddRow(existingID.String(), "run", "бягам", "", nil, nil, now, now, nil))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "verbs" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := txManager.Begin(ctx)
	require.NoError(t, err)

	result, err := repo.BulkImport(ctx, []domain.Row{
		row("name", "eat", "translation", "ям"),
		row("name", "run", "translation", "бягам", "example", "I run"),
	}, domain.BulkImportOptions{Tx: tx, IgnoreDuplicates: true, Validate: true})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, 1, result.EnrichedCount)
	require.Len(t, result.EnrichedVerbs, 1)
	assert.Equal(t, existingID, result.EnrichedVerbs[0].ID)
	assert.Equal(t, "I run", result.EnrichedVerbs[0].Example)
}

func TestGormVerbRepository_BulkImport_ConflictIsSkipped(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)
	txManager := NewGormTxManager(gormDB)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verbs" WHERE LOWER(name) = $1`)).
		WillReturnRows(sqlmock.NewRows(verbColumns))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "verbs"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT DO NOTHING`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	tx, err := txManager.Begin(ctx)
	require.NoError(t, err)

	result, err := repo.BulkImport(ctx, []domain.Row{row("name", "run")},
		domain.BulkImportOptions{Tx: tx, IgnoreDuplicates: true, Validate: true})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Equal(t, 0, result.CreatedCount)
	assert.Equal(t, 1, result.SkippedCount)
}

func TestGormVerbRepository_BulkImport_QueryError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)
	txManager := NewGormTxManager(gormDB)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verbs"`)).
		WillReturnError(dbErr)
	mock.ExpectRollback()

	tx, err := txManager.Begin(ctx)
	require.NoError(t, err)

	_, err = repo.BulkImport(ctx, []domain.Row{row("name", "run")},
		domain.BulkImportOptions{Tx: tx, IgnoreDuplicates: true, Validate: true})
	assert.ErrorIs(t, err, dbErr)
	require.NoError(t, tx.Rollback())
}

func TestGormVerbRepository_BulkImport_ValidationStopsBeforeSQL(t *testing.T) {
	gormDB, _ := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)

	_, err := repo.BulkImport(context.Background(), []domain.Row{row("translation", "ям")},
		domain.BulkImportOptions{IgnoreDuplicates: true, Validate: true})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, validationErr.Row)
	assert.Equal(t, "name", validationErr.Field)
}

func TestGormVerbRepository_RejectsForeignTx(t *testing.T) {
	gormDB, _ := setupMockDB(t)
	repo := NewGormVerbRepository(gormDB, nil)
	ctx := context.Background()

	memTx, err := NewMemoryStore(nil).Begin(ctx)
	require.NoError(t, err)
	defer memTx.Rollback()

	_, err = repo.Create(ctx, domain.VerbInput{Name: "run"}, domain.WriteOptions{Tx: memTx})
	assert.ErrorIs(t, err, domain.ErrForeignTx)

	err = repo.Remove(ctx, uuid.New(), domain.WriteOptions{Tx: memTx})
	assert.ErrorIs(t, err, domain.ErrForeignTx)

	_, err = repo.BulkImport(ctx, []domain.Row{row("name", "run")}, domain.BulkImportOptions{Tx: memTx})
	assert.ErrorIs(t, err, domain.ErrForeignTx)
}

func TestVerbSchema_NameIsUniqueIgnoringCase(t *testing.T) {
	verbSchema, err := schema.Parse(&domain.Verb{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var nameIndex *schema.Index
	for _, idx := range verbSchema.ParseIndexes() {
		if idx.Name == "idx_verbs_name_lower" {
			nameIndex = idx
		}
	}
	require.NotNil(t, nameIndex)
	assert.Equal(t, "UNIQUE", nameIndex.Class)
	require.Len(t, nameIndex.Fields, 1)
	assert.Equal(t, "LOWER(name)", nameIndex.Fields[0].Expression)
}

func TestGormAuditRepository_AddAuditEntry(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormAuditRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "verb_audit_log"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT ("event_id") DO NOTHING`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.AddAuditEntry(context.Background(), domain.AuditEntry{
		EventID: "evt-1",
		Action:  domain.AuditActionImported,
	})
	assert.NoError(t, err)
}

func TestGormAuditRepository_ListAuditEntries(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormAuditRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "verb_audit_log" ORDER BY created_at DESC,id DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "action", "user_id", "verb_ids", "summary", "created_at"}).
			AddRow(2, "evt-2", "imported", nil, "", "created=1", time.Now()))

	entries, err := repo.ListAuditEntries(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionImported, entries[0].Action)
}
