package redis

import (
	"context"
	"fmt"
	"time"

	"skateplan/pkg/retry"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// connectRetry bounds how long startup waits for Redis before giving up.
var connectRetry = retry.DefaultConfig()

// NewRedisClient creates a Redis client, checks the connection and brings
// the key layout up to date.
func NewRedisClient(address, password string, db, poolSize int, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         address,
		Password:     password,
		DB:           db,
		PoolSize:     poolSize,
		MinIdleConns: 1,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := retry.Do(ctx, connectRetry, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if err := Migrate(ctx, client, logger); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if logger != nil {
		logger.Info("connected to Redis",
			zap.String("address", address),
			zap.Int("db", db),
			zap.Int("pool_size", poolSize),
		)
	}

	return client, nil
}

// CloseRedisClient closes the Redis client connection
func CloseRedisClient(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
