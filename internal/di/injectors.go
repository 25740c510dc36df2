//go:build wireinject
// +build wireinject

package di

import (
	"folio/internal"
	"folio/internal/controllers"
	"folio/internal/github"
	"folio/internal/providers"
	"folio/internal/refresh"
	"folio/internal/services"
	"folio/internal/structures"
	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewZstdCompressor,
		providers.NewInstrumentedCacheProvider,

		github.NewClient,
		services.NewContributionService,
		services.NewProjectService,
		services.NewDevtoService,
		services.NewWakatimeService,

		controllers.NewGithubController,
		controllers.NewDevtoController,
		controllers.NewWakatimeController,
		controllers.NewHealthController,

		refresh.NewScheduler,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
