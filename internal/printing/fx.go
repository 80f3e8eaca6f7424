package printing

import (
	"github.com/spangleswebx/backoffice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("printing",
	fx.Provide(
		func(log *zap.Logger, cfg config.Config) Engine {
			return NewChromeEngine(log, cfg.RenderTimeout)
		},
		NewSpooler,
	),
)
