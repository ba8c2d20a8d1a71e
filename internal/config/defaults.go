package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "https://maps.distancematrixapi.com/maps/api/distancematrix/json?"
	DefaultTimeout = 30 * time.Second
)

// registerDefaults makes every key known to viper so AutomaticEnv values
// reach Unmarshal.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("auth.key", "")
	v.SetDefault("auth.client", "")
	v.SetDefault("auth.signature", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "")
	v.SetDefault("server.port", "8080")
}

// SetDefaults fills zero values of cfg.
func SetDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = DefaultTimeout
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
}
