// Package seed guarantees the administrative account exists so the
// password-recovery flow always has its one eligible user.
package seed

import (
	"context"
	"errors"

	"github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("seed",
	fx.Invoke(EnsureAdmin),
)

func EnsureAdmin(cfg config.Config, svc domain.Service, log *zap.Logger) error {
	if cfg.AdminPassword == "" {
		log.Warn("admin password not configured, skipping admin seed")
		return nil
	}

	_, err := svc.Create(context.Background(), domain.User{
		Name:     cfg.AdminUsername,
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Role:     domain.RoleAdmin,
		Access: domain.Access{
			Job:        true,
			Blogs:      true,
			Gallery:    true,
			Applicants: true,
			Invoice:    true,
			Quotation:  true,
		},
	}, cfg.AdminPassword)
	if errors.Is(err, domain.ErrUsernameTaken) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Info("seeded admin account", zap.String("username", cfg.AdminUsername))
	return nil
}
