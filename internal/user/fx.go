package user

import (
	"github.com/spangleswebx/backoffice/internal/user/repository"
	"github.com/spangleswebx/backoffice/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
