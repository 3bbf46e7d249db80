package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/hexatel/callrater/internal/clock"
	"github.com/hexatel/callrater/internal/config"
	"github.com/hexatel/callrater/internal/logger"
	"github.com/hexatel/callrater/internal/metrics"
	"github.com/hexatel/callrater/internal/migration"
	"github.com/hexatel/callrater/internal/pipeline"
	"github.com/hexatel/callrater/internal/rates"
	"github.com/hexatel/callrater/internal/server"
	"github.com/hexatel/callrater/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		metrics.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Rating domain
		rates.Module,
		pipeline.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
