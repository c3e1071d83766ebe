package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/opspulse/pkg/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, v, err := LoadConfig(logger.NewNoopLogger())
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1000, cfg.Metrics.SampleCapacity)
	assert.Equal(t, 50, cfg.Metrics.RecentCapacity)
	assert.True(t, cfg.Metrics.EnablePeriodicRecompute)
	assert.Equal(t, 60, cfg.Metrics.RecomputeInterval)
	assert.Equal(t, 30, cfg.Dashboard.StatusPollSeconds)
	assert.Equal(t, 10, cfg.Dashboard.ChartPollSeconds)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("OPSPULSE_SERVER_PORT", "9999")
	t.Setenv("OPSPULSE_LOG_LEVEL", "debug")
	t.Setenv("OPSPULSE_METRICS_ENABLE_PERIODIC_RECOMPUTE", "false")

	cfg, _, err := LoadConfig(logger.NewNoopLogger())
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Metrics.EnablePeriodicRecompute)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 3000},
			Metrics: MetricsConfig{
				SampleCapacity:          1000,
				RecentCapacity:          50,
				EnablePeriodicRecompute: true,
				RecomputeInterval:       60,
			},
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.Server.Port = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Metrics.SampleCapacity = -1
	assert.Error(t, c.Validate())

	c = valid()
	c.Metrics.RecomputeInterval = 0
	assert.Error(t, c.Validate(), "enabled recompute needs a positive interval")

	c = valid()
	c.Tracing.Enabled = true
	assert.Error(t, c.Validate(), "enabled tracing needs an endpoint")
}

func TestMetricsConfig_RecomputePeriod(t *testing.T) {
	c := MetricsConfig{RecomputeInterval: 90}
	assert.Equal(t, "1m30s", c.RecomputePeriod().String())
}
