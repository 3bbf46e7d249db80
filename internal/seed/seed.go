// Package seed bootstraps the rate table for local and self-hosted
// environments.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"

	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"github.com/hexatel/callrater/internal/rates/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed rates.json
var defaultRates []byte

// EnsureRates seeds the rate table when it is empty. A non-empty path
// loads rates from that file; otherwise the embedded defaults apply.
// An already-populated table is left untouched.
func EnsureRates(db *gorm.DB, repo ratesdomain.Repository, path string, log *zap.Logger) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	log = log.Named("seed")

	ctx := context.Background()
	count, err := repo.Count(ctx, db)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("rate table already populated", zap.Int64("rows", count))
		return nil
	}

	var entries []ratesdomain.RateEntry
	if path != "" {
		entries, err = repository.LoadFile(path)
		if err != nil {
			return err
		}
		log.Info("seeding rate table from file", zap.String("path", path), zap.Int("rows", len(entries)))
	} else {
		entries, err = repository.ParseJSON(bytes.NewReader(defaultRates))
		if err != nil {
			return err
		}
		log.Info("seeding rate table from embedded defaults", zap.Int("rows", len(entries)))
	}

	return repo.BulkInsert(ctx, db, entries)
}
