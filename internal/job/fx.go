package job

import (
	"github.com/spangleswebx/backoffice/internal/job/repository"
	"github.com/spangleswebx/backoffice/internal/job/service"
	"go.uber.org/fx"
)

var Module = fx.Module("job.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
