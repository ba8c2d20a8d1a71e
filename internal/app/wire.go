// Package app builds the concrete adapters behind the ports from a Config.
package app

import (
	"context"
	"distance-matrix-client/internal/adapters/distance"
	"distance-matrix-client/internal/adapters/journal"
	"distance-matrix-client/internal/adapters/signing"
	"distance-matrix-client/internal/adapters/transport"
	"distance-matrix-client/internal/config"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/platform/db"
	"distance-matrix-client/internal/platform/logging"
	"distance-matrix-client/internal/ports"
	"fmt"
)

// NewDMAClient builds the HTTP-backed client. Its default options carry the
// configured credentials.
func NewDMAClient(cfg *config.Config) (*distance.DMAClient, error) {
	return distance.NewDMAClient(
		transport.NewHTTPTransport(cfg.API.Timeout),
		signing.NewGoogleSigner(),
		distance.WithBaseURL(cfg.API.BaseURL),
		distance.WithDefaultOptions(DefaultOptions(cfg)),
	)
}

func DefaultOptions(cfg *config.Config) domain.Options {
	return domain.DefaultOptions(cfg.Auth.Auth())
}

// OpenJournal opens the configured journal database and makes sure the
// schema exists. It returns a nil journal and a no-op close when no
// database URL is configured.
func OpenJournal(ctx context.Context, cfg config.DatabaseConfig) (ports.ResultJournal, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Enabled() {
		return nil, noop, nil
	}

	conn, err := db.Open(ctx, cfg.Driver, cfg.URL)
	if err != nil {
		return nil, noop, fmt.Errorf("open journal: %w", err)
	}

	if err := journal.InitSchema(ctx, conn, cfg.Driver); err != nil {
		_ = conn.Close()
		return nil, noop, fmt.Errorf("open journal: %w", err)
	}

	j, err := journal.New(cfg.Driver, conn)
	if err != nil {
		_ = conn.Close()
		return nil, noop, fmt.Errorf("open journal: %w", err)
	}

	logging.Default.Infow("query journal enabled", "driver", cfg.Driver)
	return j, conn.Close, nil
}
