package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phishguard/phishguard-api/internal/container"
	"github.com/phishguard/phishguard-api/internal/domain/repository"
	handlers "github.com/phishguard/phishguard-api/internal/interface/http"
	"github.com/phishguard/phishguard-api/internal/interface/middleware"
	"github.com/phishguard/phishguard-api/pkg/helpers"
)

// ScanModule wires the scan endpoints behind bearer-token auth.
// Protected: POST /api/scan/predict, GET /api/scan/history
// Admin: GET /api/scan/analytics
type ScanModule struct {
	Handler *handlers.ScanHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewScanModule(h *handlers.ScanHandler, users repository.UserRepository, jwt *helpers.JWTManager) *ScanModule {
	return &ScanModule{Handler: h, Users: users, JWT: jwt}
}

func (m *ScanModule) Register(rg *gin.RouterGroup) {
	scan := rg.Group("/scan")
	scan.Use(middleware.Auth(m.Users, m.JWT))
	// Per-user limit keeps one caller from saturating the classifier.
	scan.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		scan.POST("/predict", m.Handler.Predict)
		scan.GET("/history", m.Handler.History)
		scan.GET("/analytics", middleware.AdminOnly(), m.Handler.Analytics)
	}
}
