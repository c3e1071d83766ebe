package config

import (
	"fmt"
	"time"
)

// Config holds the application's configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Store     StoreConfig     `mapstructure:"store"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Address returns the host:port the HTTP server binds to.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	ServiceName    string  `mapstructure:"service_name"`
	SamplingRate   float64 `mapstructure:"sampling_rate"`
	Environment    string  `mapstructure:"environment"`
}

type MetricsConfig struct {
	SampleCapacity          int  `mapstructure:"sample_capacity"`
	RecentCapacity          int  `mapstructure:"recent_capacity"`
	EnablePeriodicRecompute bool `mapstructure:"enable_periodic_recompute"`
	RecomputeInterval       int  `mapstructure:"recompute_interval"` // in seconds
}

// RecomputePeriod returns the rate-recompute interval as a duration.
func (c *MetricsConfig) RecomputePeriod() time.Duration {
	return time.Duration(c.RecomputeInterval) * time.Second
}

type StoreConfig struct {
	EntryTTL        int `mapstructure:"entry_ttl"`        // in seconds, 0 means no expiration
	CleanupInterval int `mapstructure:"cleanup_interval"` // in seconds
}

type DashboardConfig struct {
	StatusPollSeconds int `mapstructure:"status_poll_seconds"`
	ChartPollSeconds  int `mapstructure:"chart_poll_seconds"`
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Metrics.SampleCapacity <= 0 {
		return fmt.Errorf("metrics sample capacity must be positive, got %d", c.Metrics.SampleCapacity)
	}
	if c.Metrics.RecentCapacity <= 0 {
		return fmt.Errorf("metrics recent capacity must be positive, got %d", c.Metrics.RecentCapacity)
	}
	if c.Metrics.EnablePeriodicRecompute && c.Metrics.RecomputeInterval <= 0 {
		return fmt.Errorf("recompute interval must be positive, got %d", c.Metrics.RecomputeInterval)
	}
	if c.Tracing.Enabled && c.Tracing.JaegerEndpoint == "" {
		return fmt.Errorf("tracing enabled but jaeger_endpoint is empty")
	}
	return nil
}
