// Package migration runs gorm AutoMigrate for every persisted model at
// startup.
package migration

import (
	appdomain "github.com/spangleswebx/backoffice/internal/application/domain"
	blogdomain "github.com/spangleswebx/backoffice/internal/blog/domain"
	docdomain "github.com/spangleswebx/backoffice/internal/document/domain"
	gallerydomain "github.com/spangleswebx/backoffice/internal/gallery/domain"
	jobdomain "github.com/spangleswebx/backoffice/internal/job/domain"
	userdomain "github.com/spangleswebx/backoffice/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

func Run(db *gorm.DB, log *zap.Logger) error {
	log.Info("running migrations")
	return db.AutoMigrate(
		&docdomain.Document{},
		&jobdomain.Job{},
		&appdomain.Application{},
		&blogdomain.Blog{},
		&gallerydomain.Gallery{},
		&userdomain.User{},
	)
}
