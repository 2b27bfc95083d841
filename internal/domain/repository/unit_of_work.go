package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork hands repositories either a plain connection or a transaction.
type UnitOfWork interface {
	DB(ctx context.Context) *gorm.DB
	// Transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
