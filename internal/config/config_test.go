package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8081), cfg.HTTP.Port)
	assert.Equal(t, "session:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 300*time.Millisecond, cfg.Form.QuietPeriod)
	assert.Equal(t, 30*time.Minute, cfg.Form.IdleTTL)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.Addr)
	assert.True(t, cfg.Psql.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_ADDRESS", "http://api.internal:9000")
	t.Setenv("BACKEND_READ_RETRIES", "0")
	t.Setenv("FORM_QUIET_PERIOD", "1s")
	t.Setenv("REDIS_SESSION_TTL", "30m")
	t.Setenv("PSQL_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.internal:9000", cfg.Backend.Addr)
	assert.Zero(t, cfg.Backend.ReadRetries)
	assert.Equal(t, time.Second, cfg.Form.QuietPeriod)
	assert.Equal(t, 30*time.Minute, cfg.Redis.SessionTTL)
	assert.False(t, cfg.Psql.Enabled)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("FORM_QUIET_PERIOD", "soon")

	_, err := Load()
	assert.Error(t, err)
}
