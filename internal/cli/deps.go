package cli

import (
	"net/http"
	"time"

	"skateplan/internal/core/ports"
	"skateplan/internal/core/services"
	"skateplan/internal/infrastructure/gateway"
	"skateplan/internal/infrastructure/monitoring"
	"skateplan/internal/infrastructure/repositories"
	"skateplan/pkg/config"
	"skateplan/pkg/logger"

	"go.uber.org/zap"
)

// Deps are the services a command run needs.
type Deps struct {
	Auth        ports.AuthService
	Access      ports.AccessService
	Roster      *services.RosterService
	Training    *services.TrainingService
	Performance *services.PerformanceService
	Planner     *services.PlannerService
	Season      *services.SeasonService
	Results     *services.ResultsService
	Logistics   *services.LogisticsService
	Health      *monitoring.HealthChecker
	Logger      *zap.Logger

	close func() error
}

// Close releases connections held by the deps.
func (d *Deps) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// DepsFactory builds Deps from the --config flag value.
type DepsFactory func(configPath string) (*Deps, error)

// NewDeps wires every service against one gateway client.
func NewDeps(gw ports.Gateway, tokens ports.TokenStore, log *zap.Logger) *Deps {
	if log == nil {
		log = zap.NewNop()
	}
	roster := services.NewRosterService(gw)
	health := monitoring.NewHealthChecker()
	health.AddTokenStoreCheck(tokens, time.Second)
	return &Deps{
		Auth:        services.NewAuthService(gw, tokens, log),
		Access:      services.NewAccessService(roster, nil),
		Roster:      roster,
		Training:    services.NewTrainingService(gw),
		Performance: services.NewPerformanceService(gw, gateway.EncodeMultipart),
		Planner:     services.NewPlannerService(gw),
		Season:      services.NewSeasonService(gw),
		Results:     services.NewResultsService(gw),
		Logistics:   services.NewLogisticsService(gw),
		Health:      health,
		Logger:      log,
	}
}

// LoadDeps reads the configuration and connects to the backend and the
// configured token store.
func LoadDeps(configPath string) (*Deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	factory := repositories.NewRepositoryFactory(cfg, log)

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	gw := gateway.NewClient(cfg.API.BaseURL,
		gateway.WithHTTPClient(httpClient),
		gateway.WithLogger(log),
		gateway.WithUserAgent(cfg.API.UserAgent),
	)

	deps := NewDeps(gw, factory.CreateTokenStore(), log)
	deps.Health.AddUpstreamCheck(httpClient, cfg.API.BaseURL, 3*time.Second)
	if client := factory.RedisClient(); client != nil {
		deps.Health.AddRedisCheck(client, 2*time.Second)
	}
	deps.close = func() error {
		_ = log.Sync()
		return factory.Close()
	}
	return deps, nil
}
