package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.DefaultTimezone)
	assert.Equal(t, 30, cfg.DefaultSlotInterval)
	assert.Equal(t, 6*time.Hour, cfg.CancellationNotice)
	assert.Equal(t, "*/10 * * * *", cfg.ExpirePendingCron)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Lisbon")
	t.Setenv("CANCELLATION_NOTICE", "2h30m")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "Europe/Lisbon", cfg.DefaultTimezone)
	assert.Equal(t, 150*time.Minute, cfg.CancellationNotice)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DEFAULT_TIMEZONE", "Mars/Olympus")
	t.Setenv("DEFAULT_SLOT_INTERVAL_MIN", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_TIMEZONE")
	assert.Contains(t, err.Error(), "DEFAULT_SLOT_INTERVAL_MIN")
}

func TestLoad_Malformed(t *testing.T) {
	t.Setenv("CANCELLATION_NOTICE", "six hours")

	_, err := Load()
	assert.Error(t, err)
}
