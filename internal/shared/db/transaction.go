// Package db carries gorm transaction plumbing shared by the repositories.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey keys the active transaction in a context.
type txKey struct{}

// TransactionManager runs use case callbacks inside a single gorm
// transaction. The transaction travels through the context, so
// repositories pick it up without any signature changes.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction opens a transaction, stashes it in the context handed
// to fn, and commits when fn returns nil. Any error rolls back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the transaction carried by ctx, falling back to
// defaultDB when the caller is not inside RunInTransaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
