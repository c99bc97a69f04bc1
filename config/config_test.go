package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "store.db", cfg.SQLite.Path)
	assert.Equal(t, 1, cfg.SQLite.MaxOpenConns)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "@every 15m", cfg.Scheduler.LowStockReportSpec)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SQLITE_PATH", "/tmp/ledger.db")
	t.Setenv("SQLITE_BUSY_TIMEOUT_MS", "250")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	assert.Equal(t, "/tmp/ledger.db", cfg.SQLite.Path)
	assert.Equal(t, 250, cfg.SQLite.BusyTimeoutMS)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Logger.DisableCaller)
}

func TestLoadEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "many")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "maybe")

	cfg := LoadEnv()

	assert.Equal(t, 1, cfg.SQLite.MaxOpenConns)
	assert.True(t, cfg.Logger.DisableStacktrace)
}
