package internal

import (
	"folio/internal/controllers"
	"folio/internal/providers"
	"net/http"
)

func InitRoutes(githubController *controllers.GithubController, devtoController *controllers.DevtoController, wakatimeController *controllers.WakatimeController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/github/contributions", http.HandlerFunc(githubController.GetContributions))
	routers.Get("/api/github/non-contribution-days", http.HandlerFunc(githubController.GetNonContributionDays))
	routers.Get("/api/github/projects", http.HandlerFunc(githubController.GetProjects))
	routers.Get("/api/devto", http.HandlerFunc(devtoController.GetArticles))
	routers.Get("/api/wakatime", http.HandlerFunc(wakatimeController.GetStats))
	routers.Get("/api/wakatime-user", http.HandlerFunc(wakatimeController.GetUser))
	return routers
}
