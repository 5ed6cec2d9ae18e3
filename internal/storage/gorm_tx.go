package storage

import (
	"context"
	"fmt"

	"github.com/grachmannico95/verbs-service/internal/domain"
	"gorm.io/gorm"
)

// GormTx is a domain.Tx backed by a gorm transaction.
type GormTx struct {
	db *gorm.DB
}

func (t *GormTx) Commit() error {
	return t.db.Commit().Error
}

func (t *GormTx) Rollback() error {
	return t.db.Rollback().Error
}

type GormTxManager struct {
	db *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) Begin(ctx context.Context) (domain.Tx, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &GormTx{db: tx}, nil
}

// conn returns the session a repository call should run on: the transaction
// when one is given, the pool otherwise. A Tx from another store is rejected
// rather than run on the pool.
func conn(ctx context.Context, db *gorm.DB, tx domain.Tx) (*gorm.DB, error) {
	if tx == nil {
		return db.WithContext(ctx), nil
	}
	gtx, ok := tx.(*GormTx)
	if !ok || gtx == nil {
		return nil, fmt.Errorf("%w: %T", domain.ErrForeignTx, tx)
	}
	return gtx.db.WithContext(ctx), nil
}
