package middleware

import (
	"context"
	"strings"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/pkg/cache"
	apperrors "skateplan/pkg/errors"
	"skateplan/pkg/logger"
	"skateplan/pkg/validation"

	"github.com/gin-gonic/gin"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// ProfileCacheMetrics counts profile cache hits and misses.
type ProfileCacheMetrics interface {
	RecordProfileCache(hit bool)
}

// AuthMiddleware resolves "Authorization: Token <t>" to the backend user.
// Profiles are cached per token so repeated lookups do not hit the backend.
func AuthMiddleware(auth ports.AuthService, profiles *cache.Cache[*domain.User], metrics ProfileCacheMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := parseToken(c.GetHeader("Authorization"))
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		user, err := loadProfile(c.Request.Context(), auth, profiles, metrics, token)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(tokenKey, token)
		c.Set(userKey, user)
		c.Request = c.Request.WithContext(logger.WithUserEmail(c.Request.Context(), user.Email))
		c.Next()
	}
}

func parseToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.NewUnauthorizedError("authorization header required")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Token" {
		return "", apperrors.NewUnauthorizedError("invalid authorization header format, want \"Token <token>\"")
	}
	if err := validation.ValidateToken(parts[1]); err != nil {
		return "", apperrors.NewUnauthorizedError(err.Error())
	}
	return parts[1], nil
}

func loadProfile(ctx context.Context, auth ports.AuthService, profiles *cache.Cache[*domain.User], metrics ProfileCacheMetrics, token string) (*domain.User, error) {
	if profiles == nil {
		return auth.Profile(ctx, token)
	}
	if user, ok := profiles.Get(token); ok {
		if metrics != nil {
			metrics.RecordProfileCache(true)
		}
		return user, nil
	}
	if metrics != nil {
		metrics.RecordProfileCache(false)
	}
	return profiles.GetOrLoad(ctx, token, func(ctx context.Context) (*domain.User, error) {
		return auth.Profile(ctx, token)
	})
}

// TokenFrom returns the token accepted by AuthMiddleware.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// UserFrom returns the user resolved by AuthMiddleware.
func UserFrom(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}
