package repository

import (
	"context"

	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() ratesdomain.Repository {
	return &repo{}
}

func (r *repo) BulkInsert(ctx context.Context, db *gorm.DB, entries []ratesdomain.RateEntry) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			err := tx.Exec(
				`INSERT INTO cdr_rates (rate_id, country_code, standard_rate, reduced_rate, description, dial_plan, charging_block_id, access_code)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				e.RateID,
				e.CountryCode,
				e.StandardRate,
				e.ReducedRate,
				e.Description,
				e.DialPlan,
				e.ChargingBlockID,
				e.AccessCode,
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM cdr_rates`).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]ratesdomain.RateEntry, error) {
	var entries []ratesdomain.RateEntry
	err := db.WithContext(ctx).Raw(
		`SELECT rate_id, country_code, standard_rate, reduced_rate, description, dial_plan, charging_block_id, access_code
		 FROM cdr_rates ORDER BY dial_plan ASC, access_code ASC`,
	).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
