package application

import (
	"github.com/spangleswebx/backoffice/internal/application/repository"
	"github.com/spangleswebx/backoffice/internal/application/service"
	"go.uber.org/fx"
)

var Module = fx.Module("application.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
