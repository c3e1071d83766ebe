package config

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/turtacn/opspulse/pkg/constants"
	"github.com/turtacn/opspulse/pkg/logger"
)

// LoadConfig loads the configuration from file and environment variables.
// Precedence: environment > config file > defaults. The viper instance is
// returned alongside the config so the caller can opt into WatchConfig.
func LoadConfig(log logger.Logger) (*Config, *viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	// Load from config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/opspulse/")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, nil, err
		}
		log.Info(context.Background(), "No config file found, using defaults")
	}

	// Load from environment variables
	v.SetEnvPrefix("OPSPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, v, nil
}

// WatchConfig reloads the configuration when the backing file changes and
// invokes onChange with the fresh copy. Reload failures keep the previous
// configuration in effect.
func WatchConfig(v *viper.Viper, log logger.Logger, onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info(context.Background(), "Config file changed, reloading", logger.Fields{
			"file": e.Name,
			"op":   e.Op.String(),
		})

		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			log.Error(context.Background(), "Failed to reload config", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			log.Error(context.Background(), "Reloaded config is invalid, keeping previous", err)
			return
		}
		onChange(&cfg)
	})
	v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", constants.ServiceName)
	v.SetDefault("tracing.sampling_rate", 1.0)
	v.SetDefault("tracing.environment", "development")

	v.SetDefault("metrics.sample_capacity", constants.ResponseTimeSampleCapacity)
	v.SetDefault("metrics.recent_capacity", constants.RecentRequestCapacity)
	v.SetDefault("metrics.enable_periodic_recompute", true)
	v.SetDefault("metrics.recompute_interval", int(constants.RequestRateRecomputeInterval.Seconds()))

	v.SetDefault("store.entry_ttl", 0)
	v.SetDefault("store.cleanup_interval", 600)

	v.SetDefault("dashboard.status_poll_seconds", 30)
	v.SetDefault("dashboard.chart_poll_seconds", 10)
}
