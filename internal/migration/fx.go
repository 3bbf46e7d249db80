package migration

import (
	"github.com/hexatel/callrater/internal/config"
	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"github.com/hexatel/callrater/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, repo ratesdomain.Repository, log *zap.Logger) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := conn.AutoMigrate(&ratesdomain.RateEntry{}); err != nil {
				return err
			}
		}
		return seed.EnsureRates(conn, repo, cfg.RatesPath, log)
	}),
)
