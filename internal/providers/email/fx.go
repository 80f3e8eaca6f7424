package email

import (
	"github.com/spangleswebx/backoffice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.email",
	fx.Provide(func(cfg config.Config, log *zap.Logger) Provider {
		if cfg.SMTPHost == "" {
			log.Warn("smtp host not configured, outbound mail disabled")
			return NoOp{}
		}
		return NewSMTP(cfg, log)
	}),
)
