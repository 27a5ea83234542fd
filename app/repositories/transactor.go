package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs a function within a single database transaction.
// Multi-step mutations (cart merge, order placement) go through it so a
// failure in any step rolls back the rest.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
