package gallery

import (
	"github.com/spangleswebx/backoffice/internal/gallery/repository"
	"github.com/spangleswebx/backoffice/internal/gallery/service"
	"go.uber.org/fx"
)

var Module = fx.Module("gallery.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
