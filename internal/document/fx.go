package document

import (
	"github.com/spangleswebx/backoffice/internal/document/repository"
	"github.com/spangleswebx/backoffice/internal/document/service"
	"go.uber.org/fx"
)

var Module = fx.Module("document.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
