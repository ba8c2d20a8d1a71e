package main

import (
	"context"
	"distance-matrix-client/internal/adapters/journal"
	"distance-matrix-client/internal/config"
	"distance-matrix-client/internal/platform/db"
	"distance-matrix-client/internal/platform/logging"
	"flag"
)

// dbtool creates the query journal schema in the configured database.
func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)
	logging.Configure(cfg.Logging.Level, cfg.Logging.Format)
	log := logging.Default

	if !cfg.Database.Enabled() {
		log.Fatal("database.url (DMA_DATABASE_URL) is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatalw("open database", "err", err)
	}
	defer conn.Close()

	log.Infow("initializing journal schema", "driver", cfg.Database.Driver)
	if err := journal.InitSchema(ctx, conn, cfg.Database.Driver); err != nil {
		log.Fatalw("schema initialization failed", "err", err)
	}
	log.Info("schema ready")
}
