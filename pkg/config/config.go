package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"skateplan/pkg/validation"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultAPIBaseURL is the backend origin used when nothing else is configured.
const DefaultAPIBaseURL = "https://api.skateplan.bradnet.net/api"

// Session store backends.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	API struct {
		BaseURL   string        `yaml:"base_url"`
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"api"`

	Session struct {
		Store     string `yaml:"store"`
		TokenFile string `yaml:"token_file"`
		Profile   string `yaml:"profile"`
	} `yaml:"session"`

	Server struct {
		Address         string        `yaml:"address"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Capability struct {
		ProfileCacheTTL time.Duration `yaml:"profile_cache_ttl"`
	} `yaml:"capability"`

	Monitoring struct {
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
	} `yaml:"monitoring"`

	Tracing struct {
		Enabled     bool    `yaml:"enabled"`
		ServiceName string  `yaml:"service_name"`
		JaegerURL   string  `yaml:"jaeger_url"`
		Environment string  `yaml:"environment"`
		SampleRate  float64 `yaml:"sample_rate"`
	} `yaml:"tracing"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	RateLimiting struct {
		Enabled bool `yaml:"enabled"`

		HTTP struct {
			RequestsPerSecond float64 `yaml:"requests_per_second"`
			Burst             int     `yaml:"burst"`
			MaxConcurrent     int     `yaml:"max_concurrent"`
		} `yaml:"http"`
	} `yaml:"rate_limiting"`
}

// envOverrides lists the SKATEPLAN_* variables that take precedence over
// the YAML file. Unset variables leave the file value alone.
type envOverrides struct {
	APIURL        string        `envconfig:"API_URL"`
	APITimeout    time.Duration `envconfig:"API_TIMEOUT"`
	SessionStore  string        `envconfig:"SESSION_STORE"`
	TokenFile     string        `envconfig:"TOKEN_FILE"`
	Profile       string        `envconfig:"PROFILE"`
	ServerAddress string        `envconfig:"SERVER_ADDRESS"`
	LogLevel      string        `envconfig:"LOG_LEVEL"`
	LogFormat     string        `envconfig:"LOG_FORMAT"`
	RedisEnabled  *bool         `envconfig:"REDIS_ENABLED"`
	RedisAddress  string        `envconfig:"REDIS_ADDRESS"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	JaegerURL     string        `envconfig:"JAEGER_URL"`
}

// Validate checks that configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	// API
	if err := validation.ValidateURL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0")
	}

	// Session
	switch c.Session.Store {
	case StoreFile:
		if c.Session.TokenFile == "" {
			return fmt.Errorf("session.token_file must not be empty when session.store=file")
		}
	case StoreRedis:
		if !c.Redis.Enabled {
			return fmt.Errorf("session.store=redis requires redis.enabled=true")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("session.store must be one of file, redis, memory")
	}
	if c.Session.Profile == "" {
		return fmt.Errorf("session.profile must not be empty")
	}

	// Server
	if c.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be > 0")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be > 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0")
	}

	if c.Capability.ProfileCacheTTL < 0 {
		return fmt.Errorf("capability.profile_cache_ttl must be >= 0")
	}

	// Tracing
	if c.Tracing.Enabled {
		if c.Tracing.JaegerURL == "" {
			return fmt.Errorf("tracing.jaeger_url must not be empty when tracing.enabled=true")
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
			return fmt.Errorf("tracing.sample_rate must be within [0, 1]")
		}
	}

	// Logging
	if c.Logging.Level == "" {
		return fmt.Errorf("logging.level must not be empty")
	}

	// Redis
	if c.Redis.Enabled {
		if c.Redis.Address == "" {
			return fmt.Errorf("redis.address must not be empty when redis.enabled=true")
		}
		if c.Redis.PoolSize <= 0 {
			return fmt.Errorf("redis.pool_size must be > 0 when redis.enabled=true")
		}
	}

	// Rate limiting
	if c.RateLimiting.Enabled {
		if c.RateLimiting.HTTP.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limiting.http.requests_per_second must be > 0 when rate limiting is enabled")
		}
		if c.RateLimiting.HTTP.Burst <= 0 {
			return fmt.Errorf("rate_limiting.http.burst must be > 0 when rate limiting is enabled")
		}
		if c.RateLimiting.HTTP.MaxConcurrent < 0 {
			return fmt.Errorf("rate_limiting.http.max_concurrent must be >= 0 when rate limiting is enabled")
		}
	}

	return nil
}

// Load reads configuration from YAML file, applies defaults and env overrides.
// A missing file is not an error.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config yaml: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.Session.TokenFile = expandHome(cfg.Session.TokenFile)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns configuration with sane defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.API.BaseURL = DefaultAPIBaseURL
	cfg.API.Timeout = 30 * time.Second
	cfg.API.UserAgent = "skateplan-go"

	cfg.Session.Store = StoreFile
	cfg.Session.TokenFile = defaultTokenFile()
	cfg.Session.Profile = "default"

	cfg.Server.Address = ":8080"
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 15 * time.Second
	cfg.Server.ShutdownTimeout = 10 * time.Second

	cfg.Capability.ProfileCacheTTL = 30 * time.Second

	cfg.Monitoring.PrometheusEnabled = true

	cfg.Tracing.Enabled = false
	cfg.Tracing.ServiceName = "skateplan"
	cfg.Tracing.JaegerURL = "http://localhost:14268/api/traces"
	cfg.Tracing.Environment = "development"
	cfg.Tracing.SampleRate = 1.0

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"

	cfg.Redis.Enabled = false
	cfg.Redis.Address = "localhost:6379"
	cfg.Redis.DB = 0
	cfg.Redis.PoolSize = 10

	// Rate limiting defaults (disabled by default)
	cfg.RateLimiting.Enabled = false
	cfg.RateLimiting.HTTP.RequestsPerSecond = 20
	cfg.RateLimiting.HTTP.Burst = 40
	cfg.RateLimiting.HTTP.MaxConcurrent = 0

	return cfg
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".skateplan", "token")
	}
	return filepath.Join(home, ".skateplan", "token")
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[2:])
}

func (c *Config) applyEnvOverrides() error {
	var env envOverrides
	if err := envconfig.Process("SKATEPLAN", &env); err != nil {
		return fmt.Errorf("failed to read SKATEPLAN_* environment: %w", err)
	}

	if env.APIURL != "" {
		c.API.BaseURL = env.APIURL
	}
	if env.APITimeout != 0 {
		c.API.Timeout = env.APITimeout
	}
	if env.SessionStore != "" {
		c.Session.Store = env.SessionStore
	}
	if env.TokenFile != "" {
		c.Session.TokenFile = env.TokenFile
	}
	if env.Profile != "" {
		c.Session.Profile = env.Profile
	}
	if env.ServerAddress != "" {
		c.Server.Address = env.ServerAddress
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if env.RedisEnabled != nil {
		c.Redis.Enabled = *env.RedisEnabled
	}
	if env.RedisAddress != "" {
		c.Redis.Address = env.RedisAddress
	}
	if env.RedisPassword != "" {
		c.Redis.Password = env.RedisPassword
	}
	if env.JaegerURL != "" {
		c.Tracing.JaegerURL = env.JaegerURL
	}
	return nil
}
