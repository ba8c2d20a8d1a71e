package config

import (
	"distance-matrix-client/internal/domain"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// AuthConfig holds the API credentials. Business auth is used when both
// Client and Signature are set, otherwise the simple Key.
type AuthConfig struct {
	Key       string `mapstructure:"key"`
	Client    string `mapstructure:"client"`
	Signature string `mapstructure:"signature"`
}

// Environment names per auth key, in lookup order. The second name of each
// pair is the legacy variable still set by older deployments.
var authEnv = map[string][]string{
	"auth.key":       {"DMA_API_KEY", "API_KEY"},
	"auth.client":    {"DMA_CLIENT", "Outdated2"},
	"auth.signature": {"DMA_SIGNATURE", "Outdated3"},
}

func bindAuthEnv(v *viper.Viper) error {
	for key, names := range authEnv {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

// AuthFromEnv reads credentials straight from the environment.
func AuthFromEnv() AuthConfig {
	return AuthConfig{
		Key:       firstEnv(authEnv["auth.key"]...),
		Client:    firstEnv(authEnv["auth.client"]...),
		Signature: firstEnv(authEnv["auth.signature"]...),
	}
}

// Auth returns the auth shape these credentials select.
func (a AuthConfig) Auth() domain.Auth {
	return domain.AuthFromCredentials(a.Key, a.Client, a.Signature)
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
