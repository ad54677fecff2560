package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	schemaVersionKey     = "skateplan:schema:version"
	currentSchemaVersion = 1

	// legacyTokenKey held the single shared token before per-profile keys.
	legacyTokenKey = "skateplan:token"
)

// Migration is one step of the Redis key layout.
type Migration struct {
	Version int
	Up      func(ctx context.Context, client *redis.Client) error
}

// Migrate runs all pending migrations
func Migrate(ctx context.Context, client *redis.Client, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	currentVersion, err := getSchemaVersion(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if currentVersion >= currentSchemaVersion {
		logger.Debug("schema is up to date",
			zap.Int("current_version", currentVersion),
			zap.Int("target_version", currentSchemaVersion),
		)
		return nil
	}

	for _, migration := range getMigrations() {
		if migration.Version <= currentVersion {
			continue
		}
		logger.Info("running migration", zap.Int("version", migration.Version))

		if err := migration.Up(ctx, client); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		if err := setSchemaVersion(ctx, client, migration.Version); err != nil {
			return fmt.Errorf("failed to update schema version: %w", err)
		}
	}

	logger.Info("all migrations completed", zap.Int("final_version", currentSchemaVersion))
	return nil
}

func getSchemaVersion(ctx context.Context, client *redis.Client) (int, error) {
	val, err := client.Get(ctx, schemaVersionKey).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

func setSchemaVersion(ctx context.Context, client *redis.Client, version int) error {
	return client.Set(ctx, schemaVersionKey, version, 0).Err()
}

func getMigrations() []Migration {
	return []Migration{
		{
			// Move the shared token into the default profile. An existing
			// default profile token wins.
			Version: 1,
			Up: func(ctx context.Context, client *redis.Client) error {
				token, err := client.Get(ctx, legacyTokenKey).Result()
				if errors.Is(err, redis.Nil) {
					return nil
				}
				if err != nil {
					return err
				}
				if err := client.SetNX(ctx, TokenKey("default"), token, 0).Err(); err != nil {
					return err
				}
				return client.Del(ctx, legacyTokenKey).Err()
			},
		},
	}
}
