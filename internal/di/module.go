package di

import (
	"go.uber.org/fx"

	"slotdesk/internal/app"
	"slotdesk/internal/config"
	"slotdesk/internal/logger"
	"slotdesk/internal/metrics"
	"slotdesk/internal/server/http/handlers"
	"slotdesk/internal/server/http/router"
	"slotdesk/internal/storage/postgres"
	"slotdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.BackofficeFacade) handlers.BackofficeFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
