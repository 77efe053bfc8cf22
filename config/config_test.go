package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 500*time.Millisecond, cfg.Directory.FetchDelay)
	assert.Equal(t, time.Second, cfg.Booking.CommitLatency)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DIRECTORY_FETCH_DELAY", "10ms")
	t.Setenv("BOOKING_COMMIT_LATENCY", "25ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, 10*time.Millisecond, cfg.Directory.FetchDelay)
	assert.Equal(t, 25*time.Millisecond, cfg.Booking.CommitLatency)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("DIRECTORY_FETCH_DELAY", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Directory.FetchDelay)
}
