package repositories

import (
	"context"

	"skateplan/internal/core/ports"
	"skateplan/internal/infrastructure/repositories/file"
	"skateplan/internal/infrastructure/repositories/memory"
	redisrepo "skateplan/internal/infrastructure/repositories/redis"
	"skateplan/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RepositoryFactory creates token stores with fallback support
type RepositoryFactory struct {
	store       string
	tokenFile   string
	profile     string
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewRepositoryFactory connects to Redis when the session store asks for
// it. An unreachable Redis is not fatal: the factory falls back to the
// token file.
func NewRepositoryFactory(cfg *config.Config, logger *zap.Logger) *RepositoryFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := &RepositoryFactory{
		store:     cfg.Session.Store,
		tokenFile: cfg.Session.TokenFile,
		profile:   cfg.Session.Profile,
		logger:    logger,
	}

	if factory.store == config.StoreRedis && cfg.Redis.Enabled {
		client, err := redisrepo.NewRedisClient(
			cfg.Redis.Address,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
			logger,
		)
		if err != nil {
			logger.Warn("failed to connect to Redis, falling back to file token store",
				zap.Error(err),
				zap.String("token_file", factory.tokenFile),
			)
			factory.store = config.StoreFile
		} else {
			factory.redisClient = client
		}
	} else if factory.store == config.StoreRedis {
		factory.store = config.StoreFile
	}

	logger.Info("token store selected", zap.String("store", factory.store))
	return factory
}

// Store returns the backend actually in use.
func (f *RepositoryFactory) Store() string {
	return f.store
}

// RedisClient returns the Redis connection, or nil when Redis is not used.
func (f *RepositoryFactory) RedisClient() *redis.Client {
	return f.redisClient
}

// CreateTokenStore creates the token store for the configured profile.
func (f *RepositoryFactory) CreateTokenStore() ports.TokenStore {
	switch f.store {
	case config.StoreRedis:
		if f.redisClient != nil {
			return redisrepo.NewRedisTokenStore(f.redisClient, f.profile)
		}
	case config.StoreMemory:
		return memory.NewMemoryTokenStore()
	}
	return file.NewFileTokenStore(f.tokenFile)
}

// Close closes Redis connection if used
func (f *RepositoryFactory) Close() error {
	if f.redisClient != nil {
		return redisrepo.CloseRedisClient(f.redisClient)
	}
	return nil
}

// HealthCheck checks Redis connection health
func (f *RepositoryFactory) HealthCheck(ctx context.Context) error {
	if f.redisClient != nil {
		return f.redisClient.Ping(ctx).Err()
	}
	return nil
}
