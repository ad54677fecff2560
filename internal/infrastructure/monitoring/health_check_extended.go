package monitoring

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"skateplan/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// AddRedisCheck adds a Redis health check
func (h *HealthChecker) AddRedisCheck(client *redis.Client, timeout time.Duration) {
	h.AddCheck("redis", func(ctx context.Context) (bool, error) {
		if err := client.Ping(ctx).Err(); err != nil {
			return false, err
		}
		return true, nil
	}, timeout)
}

// AddUpstreamCheck verifies the backend API answers at all. Any HTTP
// response, including 4xx, counts as reachable.
func (h *HealthChecker) AddUpstreamCheck(client *http.Client, baseURL string, timeout time.Duration) {
	h.AddCheck("upstream", func(ctx context.Context) (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/federations/", nil)
		if err != nil {
			return false, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return false, err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return false, fmt.Errorf("upstream returned %d", resp.StatusCode)
		}
		return true, nil
	}, timeout)
}

// AddTokenStoreCheck verifies the token store can be read.
func (h *HealthChecker) AddTokenStoreCheck(store ports.TokenStore, timeout time.Duration) {
	h.AddCheck("token_store", func(ctx context.Context) (bool, error) {
		if _, err := store.Load(ctx); err != nil && !isNoToken(err) {
			return false, err
		}
		return true, nil
	}, timeout)
}

// IsReady checks if the service is ready to accept traffic
func (h *HealthChecker) IsReady(ctx context.Context) bool {
	return h.CheckAll(ctx).Status == StatusHealthy
}
