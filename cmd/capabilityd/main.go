package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/services"
	httphandlers "skateplan/internal/handlers/http"
	"skateplan/internal/infrastructure/gateway"
	"skateplan/internal/infrastructure/monitoring"
	repositories "skateplan/internal/infrastructure/repositories"
	"skateplan/internal/infrastructure/repositories/memory"
	"skateplan/pkg/cache"
	"skateplan/pkg/config"
	"skateplan/pkg/logger"
	"skateplan/pkg/tracing"
	"skateplan/pkg/version"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		logger.New("info", "json").Fatal("failed to load configuration", zap.Error(err))
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()

	tp, err := tracing.Init(tracingConfig(cfg))
	if err != nil {
		zapLogger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Redis is only used for its health check here; sessions are the
	// callers' own tokens.
	repoFactory := repositories.NewRepositoryFactory(cfg, zapLogger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := monitoring.NewPrometheusCollector(registry)

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	gw := gateway.NewClient(cfg.API.BaseURL,
		gateway.WithHTTPClient(httpClient),
		gateway.WithLogger(zapLogger),
		gateway.WithMetrics(metrics),
		gateway.WithUserAgent(cfg.API.UserAgent),
	)

	roster := services.NewRosterService(gw)
	authService := services.NewAuthService(gw, memory.NewDiscardTokenStore(), zapLogger)
	accessService := services.NewAccessService(roster, metrics)

	health := monitoring.NewHealthChecker()
	health.AddUpstreamCheck(httpClient, cfg.API.BaseURL, 3*time.Second)
	if client := repoFactory.RedisClient(); client != nil {
		health.AddRedisCheck(client, 2*time.Second)
	}

	profiles := cache.New[*domain.User](cfg.Capability.ProfileCacheTTL)
	defer profiles.Stop()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httphandlers.NewRouter(cfg, httphandlers.RouterDeps{
		Auth:     authService,
		Access:   accessService,
		Health:   health,
		Profiles: profiles,
		Metrics:  metrics,
		Gatherer: registry,
		Logger:   logger.NewContextLogger(zapLogger),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLogger.Info("starting capability API", zap.String("address", cfg.Server.Address), zap.String("backend", cfg.API.BaseURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		zapLogger.Fatal("server failed", zap.Error(err))
	case sig := <-sigChan:
		zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("error during server shutdown", zap.Error(err))
		if closeErr := srv.Close(); closeErr != nil {
			zapLogger.Error("error force closing server", zap.Error(closeErr))
		}
	} else {
		zapLogger.Info("server shutdown gracefully")
	}

	if err := tp.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("error shutting down tracer", zap.Error(err))
	}
	if err := repoFactory.Close(); err != nil {
		zapLogger.Error("error closing repository factory", zap.Error(err))
	}

	zapLogger.Info("capability API stopped")
}

// tracingConfig tags every span with the build version of this binary.
func tracingConfig(cfg *config.Config) tracing.Config {
	return tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		JaegerURL:   cfg.Tracing.JaegerURL,
		Environment: cfg.Tracing.Environment,
		SampleRate:  cfg.Tracing.SampleRate,
		Version:     version.Version,
	}
}

// configPath prefers $SKATEPLAN_CONFIG, then the first config file found
// in the usual places. An empty result means defaults plus environment.
func configPath() string {
	if p := os.Getenv("SKATEPLAN_CONFIG"); p != "" {
		return p
	}
	for _, p := range []string{"configs/config.yaml", "config.yaml", "/etc/skateplan/config.yaml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
