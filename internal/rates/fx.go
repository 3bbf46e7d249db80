package rates

import (
	"context"

	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"github.com/hexatel/callrater/internal/rates/repository"
	"github.com/hexatel/callrater/internal/rates/resolver"
	"github.com/hexatel/callrater/internal/rates/selector"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProvideTable loads the rate table from the database once at startup and
// freezes it into an immutable in-memory index.
func ProvideTable(db *gorm.DB, repo ratesdomain.Repository, log *zap.Logger) (*ratesdomain.Table, error) {
	entries, err := repo.List(context.Background(), db)
	if err != nil {
		return nil, err
	}
	log.Info("rate table loaded", zap.Int("entries", len(entries)))
	return ratesdomain.NewTable(entries), nil
}

var Module = fx.Module("rates",
	fx.Provide(
		repository.Provide,
		ProvideTable,
		resolver.NewPhoneClassifier,
		resolver.New,
		selector.New,
	),
)
