// Package adapters provides the repository implementations for the
// users feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"user_service/internal/feature/users/usecase"
)

// txKey carries the transactional handle through the context.
type txKey struct{}

// gormTxManager implements usecase.TxManager on top of gorm.
type gormTxManager struct {
	db *gorm.DB
}

var _ usecase.TxManager = (*gormTxManager)(nil)

// NewTxManager creates a transaction manager bound to the given
// connection. Constructor for dependency injection.
func NewTxManager(db *gorm.DB) *gormTxManager {
	return &gormTxManager{db: db}
}

// Do runs fn inside one database transaction. The transaction commits
// when fn returns nil and rolls back when fn returns an error or the
// request context is cancelled mid-flight.
func (m *gormTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transactional handle from the context when present,
// falling back to the base connection. Repositories call this so they
// work both inside and outside a TxManager scope.
func conn(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
