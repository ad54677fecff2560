package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"skateplan/internal/infrastructure/repositories/file"
	"skateplan/internal/infrastructure/repositories/memory"
	redisrepo "skateplan/internal/infrastructure/repositories/redis"
	"skateplan/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Session.TokenFile = filepath.Join(t.TempDir(), "token")
	return cfg
}

func TestFactory_FileByDefault(t *testing.T) {
	f := NewRepositoryFactory(testConfig(t), nil)
	defer f.Close()

	assert.Equal(t, config.StoreFile, f.Store())
	assert.IsType(t, &file.FileTokenStore{}, f.CreateTokenStore())
	assert.NoError(t, f.HealthCheck(context.Background()))
}

func TestFactory_Memory(t *testing.T) {
	cfg := testConfig(t)
	cfg.Session.Store = config.StoreMemory
	f := NewRepositoryFactory(cfg, nil)
	assert.IsType(t, &memory.MemoryTokenStore{}, f.CreateTokenStore())
}

func TestFactory_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Session.Store = config.StoreRedis
	cfg.Session.Profile = "ops"
	cfg.Redis.Enabled = true
	cfg.Redis.Address = mr.Addr()

	f := NewRepositoryFactory(cfg, nil)
	defer f.Close()
	require.NotNil(t, f.RedisClient())
	assert.Equal(t, config.StoreRedis, f.Store())

	store := f.CreateTokenStore()
	assert.IsType(t, &redisrepo.RedisTokenStore{}, store)
	require.NoError(t, store.Save(context.Background(), "abc"))
	assert.True(t, mr.Exists("skateplan:token:ops"))
	assert.NoError(t, f.HealthCheck(context.Background()))
}

func TestFactory_RedisUnreachableFallsBackToFile(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig(t)
	cfg.Session.Store = config.StoreRedis
	cfg.Redis.Enabled = true
	cfg.Redis.Address = addr

	core, logs := observer.New(zap.WarnLevel)
	f := NewRepositoryFactory(cfg, zap.New(core))

	assert.Equal(t, config.StoreFile, f.Store())
	assert.Nil(t, f.RedisClient())
	assert.IsType(t, &file.FileTokenStore{}, f.CreateTokenStore())
	assert.Equal(t, 1, logs.FilterMessage("failed to connect to Redis, falling back to file token store").Len())
}
