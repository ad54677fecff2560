package redis

import (
	"context"
	"errors"
	"fmt"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/pkg/tracing"

	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "skateplan:token:"

// RedisTokenStore keeps one token per profile so several CLI profiles and
// capability API replicas can share a session.
type RedisTokenStore struct {
	client *redis.Client
	key    string
}

func NewRedisTokenStore(client *redis.Client, profile string) ports.TokenStore {
	return &RedisTokenStore{
		client: client,
		key:    TokenKey(profile),
	}
}

// TokenKey is the redis key holding the token of profile.
func TokenKey(profile string) string {
	if profile == "" {
		profile = "default"
	}
	return tokenKeyPrefix + profile
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	ctx, span := tracing.TraceTokenStore(ctx, "load", "redis")
	defer span.End()

	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && token == "") {
		return "", domain.ErrNoToken
	}
	if err != nil {
		tracing.RecordError(ctx, err)
		return "", fmt.Errorf("failed to get token from Redis: %w", err)
	}
	return token, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	ctx, span := tracing.TraceTokenStore(ctx, "save", "redis")
	defer span.End()

	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		tracing.RecordError(ctx, err)
		return fmt.Errorf("failed to set token in Redis: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	ctx, span := tracing.TraceTokenStore(ctx, "clear", "redis")
	defer span.End()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		tracing.RecordError(ctx, err)
		return fmt.Errorf("failed to delete token from Redis: %w", err)
	}
	return nil
}
