package router

import (
	"github.com/phishguard/phishguard-api/internal/application"
	"github.com/phishguard/phishguard-api/internal/container"
	pginfra "github.com/phishguard/phishguard-api/internal/infrastructure/postgres"
	handlers "github.com/phishguard/phishguard-api/internal/interface/http"
	"github.com/phishguard/phishguard-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is wired.
func InitModules(r *Registry) {
	users := pginfra.NewUserRepository(container.GetPGPool())
	scans := pginfra.NewScanRepository(container.GetPGPool())

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetLogger())
	scanSvc := application.NewScanService(
		scans,
		container.GetClassifier(),
		container.GetConfig().AnalyticsSampleSize,
		container.GetLogger(),
	)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger())
	scanHandler := handlers.NewScanHandler(scanSvc, container.GetLogger())

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewScanModule(scanHandler, users, container.GetJWT()))
}
