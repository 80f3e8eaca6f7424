package blog

import (
	"github.com/spangleswebx/backoffice/internal/blog/repository"
	"github.com/spangleswebx/backoffice/internal/blog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("blog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
