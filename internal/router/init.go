package router

import (
	"portfolio-api/internal/application"
	"portfolio-api/internal/container"
	pginfra "portfolio-api/internal/infrastructure/postgres"
	handlers "portfolio-api/internal/interface/http"
	"portfolio-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	experiences := pginfra.NewExperienceRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	expSvc := application.NewExperienceService(experiences, logger)
	portfolioSvc := application.NewPortfolioService(users, experiences, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure, cfg.LoginRedirect)
	expHandler := handlers.NewExperienceHandler(expSvc, logger)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioSvc, logger)
	pageHandler := handlers.NewPageHandler(authSvc, expSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewExperienceModule(expHandler, jwt))
	r.Add(modules.NewPortfolioModule(portfolioHandler))
	r.AddPage(modules.NewPagesModule(pageHandler, jwt))
}
