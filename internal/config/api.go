package config

import "time"

// APIConfig holds Distance Matrix API client configuration
type APIConfig struct {
	// Base URL including the trailing "?" the query string is appended to
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Per-request timeout of the HTTP transport
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
}
