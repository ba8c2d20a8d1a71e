package config

type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required,numeric"`
}
