package main

import (
	"context"
	"distance-matrix-client/internal/api"
	"distance-matrix-client/internal/app"
	"distance-matrix-client/internal/config"
	"distance-matrix-client/internal/platform/logging"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the HTTP transport, signer and optional journal behind ports and
// starts the HTTP server.
func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)
	logging.Configure(cfg.Logging.Level, cfg.Logging.Format)
	log := logging.Default

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := app.NewDMAClient(cfg)
	if err != nil {
		log.Fatalw("build client", "err", err)
	}

	journal, closeJournal, err := app.OpenJournal(ctx, cfg.Database)
	if err != nil {
		log.Fatalw("open journal", "err", err)
	}
	defer closeJournal()

	router := api.NewRouter(client, client, journal, app.DefaultOptions(cfg))

	// Write timeout leaves room for the upstream request timeout.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.API.Timeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infow("server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalw("server stopped", "err", err)
	}
}
