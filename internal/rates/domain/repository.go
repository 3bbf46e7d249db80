package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	BulkInsert(ctx context.Context, db *gorm.DB, entries []RateEntry) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]RateEntry, error)
}
