package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/application"
	"github.com/spangleswebx/backoffice/internal/authorization"
	"github.com/spangleswebx/backoffice/internal/blog"
	"github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/document"
	"github.com/spangleswebx/backoffice/internal/gallery"
	"github.com/spangleswebx/backoffice/internal/job"
	"github.com/spangleswebx/backoffice/internal/migration"
	"github.com/spangleswebx/backoffice/internal/printing"
	"github.com/spangleswebx/backoffice/internal/providers/email"
	"github.com/spangleswebx/backoffice/internal/seed"
	"github.com/spangleswebx/backoffice/internal/server"
	"github.com/spangleswebx/backoffice/internal/storage"
	"github.com/spangleswebx/backoffice/internal/user"
	"github.com/spangleswebx/backoffice/pkg/db"
	"github.com/spangleswebx/backoffice/pkg/log"
	"go.uber.org/fx"
)

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

func main() {
	fx.New(
		config.Module,
		log.Module,
		db.Module,
		fx.Provide(newSnowflakeNode),

		authorization.Module,
		email.Module,
		storage.Module,
		printing.Module,

		document.Module,
		job.Module,
		application.Module,
		blog.Module,
		gallery.Module,
		user.Module,

		migration.Module,
		seed.Module,
		server.Module,
	).Run()
}
