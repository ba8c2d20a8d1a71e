package config

// DatabaseConfig holds the query journal database configuration.
// An empty URL disables the journal.
type DatabaseConfig struct {
	// Driver: pgx (Postgres) or sqlite
	Driver string `mapstructure:"driver" validate:"required,oneof=pgx sqlite"`

	URL string `mapstructure:"url"`
}

// Enabled reports whether a journal database is configured.
func (d DatabaseConfig) Enabled() bool { return d.URL != "" }
