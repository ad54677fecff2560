package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to build a minimal valid config that can be tweaked in tests.
func validBaseConfig() *Config {
	cfg := DefaultConfig()
	cfg.Session.TokenFile = "/tmp/skateplan-test-token"
	cfg.RateLimiting.Enabled = true
	cfg.RateLimiting.HTTP.RequestsPerSecond = 10
	cfg.RateLimiting.HTTP.Burst = 20
	cfg.RateLimiting.HTTP.MaxConcurrent = 5
	return cfg
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, StoreFile, cfg.Session.Store)
}

func TestValidate_RateLimitingDisabled_AllowsZeroValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimiting.Enabled = false
	cfg.RateLimiting.HTTP.RequestsPerSecond = 0
	cfg.RateLimiting.HTTP.Burst = 0
	cfg.RateLimiting.HTTP.MaxConcurrent = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected config to be valid when rate limiting disabled, got error: %v", err)
	}
}

func TestValidate_InvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "base url must not be empty",
			mutate: func(c *Config) { c.API.BaseURL = "" },
		},
		{
			name:   "base url must be absolute",
			mutate: func(c *Config) { c.API.BaseURL = "/api" },
		},
		{
			name:   "base url must be http(s)",
			mutate: func(c *Config) { c.API.BaseURL = "ftp://example.com/api" },
		},
		{
			name:   "base url must have a host",
			mutate: func(c *Config) { c.API.BaseURL = "https://" },
		},
		{
			name:   "api timeout must be > 0",
			mutate: func(c *Config) { c.API.Timeout = 0 },
		},
		{
			name:   "unknown session store",
			mutate: func(c *Config) { c.Session.Store = "cookie" },
		},
		{
			name: "redis store requires redis",
			mutate: func(c *Config) {
				c.Session.Store = StoreRedis
				c.Redis.Enabled = false
			},
		},
		{
			name:   "file store requires path",
			mutate: func(c *Config) { c.Session.TokenFile = "" },
		},
		{
			name:   "http rps must be > 0",
			mutate: func(c *Config) { c.RateLimiting.HTTP.RequestsPerSecond = 0 },
		},
		{
			name:   "http burst must be > 0",
			mutate: func(c *Config) { c.RateLimiting.HTTP.Burst = 0 },
		},
		{
			name:   "http max concurrent must be >= 0",
			mutate: func(c *Config) { c.RateLimiting.HTTP.MaxConcurrent = -1 },
		},
		{
			name: "tracing sample rate bounded",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.SampleRate = 2
			},
		},
		{
			name: "redis pool size",
			mutate: func(c *Config) {
				c.Redis.Enabled = true
				c.Redis.PoolSize = 0
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tc.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for case %q, got nil", tc.name)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
api:
  base_url: "https://staging.example.com/api"
  timeout: 5s
session:
  store: memory
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, StoreMemory, cfg.Session.Store)
	assert.Equal(t, "debug", cfg.Logging.Level)

	t.Setenv("SKATEPLAN_API_URL", "http://localhost:8000/api")
	t.Setenv("SKATEPLAN_API_TIMEOUT", "2s")
	t.Setenv("SKATEPLAN_LOG_LEVEL", "warn")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvRedisToggle(t *testing.T) {
	t.Setenv("SKATEPLAN_REDIS_ENABLED", "true")
	t.Setenv("SKATEPLAN_SESSION_STORE", "redis")
	t.Setenv("SKATEPLAN_REDIS_ADDRESS", "redis:6379")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, StoreRedis, cfg.Session.Store)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
}

func TestLoad_BadEnvDuration(t *testing.T) {
	t.Setenv("SKATEPLAN_API_TIMEOUT", "soon")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SKATEPLAN_API_TIMEOUT")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ExpandsHomeInTokenFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SKATEPLAN_TOKEN_FILE", "~/.skateplan/coach")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".skateplan", "coach"), cfg.Session.TokenFile)
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "config.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.RateLimiting.Enabled)
	assert.NotContains(t, cfg.Session.TokenFile, "~")
}
