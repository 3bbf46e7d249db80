package pipeline

import (
	"github.com/hexatel/callrater/internal/cdr/decoder"
	"go.uber.org/fx"
)

var Module = fx.Module("pipeline",
	fx.Provide(
		decoder.New,
		New,
	),
)
