package http

import (
	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/internal/infrastructure/middleware"
	"skateplan/internal/infrastructure/monitoring"
	"skateplan/pkg/cache"
	"skateplan/pkg/config"
	"skateplan/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps are the collaborators of the capability API.
type RouterDeps struct {
	Auth     ports.AuthService
	Access   ports.AccessService
	Health   *monitoring.HealthChecker
	Profiles *cache.Cache[*domain.User]
	Metrics  *monitoring.PrometheusCollector
	// Gatherer serves /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Logger   *logger.ContextLogger
}

// NewRouter builds the capability API engine.
func NewRouter(cfg *config.Config, deps RouterDeps) *gin.Engine {
	router := gin.New()

	var httpMetrics middleware.HTTPMetrics
	var cacheMetrics middleware.ProfileCacheMetrics
	if deps.Metrics != nil {
		httpMetrics = deps.Metrics
		cacheMetrics = deps.Metrics
	}

	router.Use(
		middleware.RecoveryMiddleware(deps.Logger),
		middleware.RequestIDMiddleware(),
		middleware.TracingMiddleware(httpMetrics),
		middleware.LoggingMiddleware(deps.Logger),
		middleware.ErrorHandlerMiddleware(deps.Logger),
		middleware.NewHTTPRateLimitMiddleware(cfg),
	)

	health := NewHealthHandler(deps.Health)
	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)
	if deps.Gatherer != nil && cfg.Monitoring.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	authHandler := NewAuthHandler(deps.Auth)
	accessHandler := NewAccessHandler(deps.Access)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/access/derive", accessHandler.Derive)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(deps.Auth, deps.Profiles, cacheMetrics))
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/skaters/:id/access", accessHandler.Lookup(domain.KindSkater))
		protected.GET("/teams/:id/access", accessHandler.Lookup(domain.KindTeam))
		protected.GET("/synchro/:id/access", accessHandler.Lookup(domain.KindSynchro))
	}

	return router
}
