package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
	"github.com/MKhiriev/go-backend-scope/internal/client"
	"github.com/MKhiriev/go-backend-scope/internal/config"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/internal/store"
	"github.com/MKhiriev/go-backend-scope/internal/tui"
	"github.com/MKhiriev/go-backend-scope/models"
)

const role = "backend-scope-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		// the UI has released the terminal by now
		logger.NewLogger(role).Fatal().Err(err).Msg("client stopped")
	}
}

// run wires the client and blocks until it exits. Every deferred cleanup
// runs before main decides the exit code.
func run() (err error) {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, err := logger.NewClientLogger(role, cfg.App.LogFile, cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	defer log.Close()
	defer func() {
		if err != nil {
			log.Error().Err(err).Msg("client stopped")
		}
	}()

	log.Info().
		Str("version", buildInfo.Version()).
		Str("date", buildInfo.Date()).
		Str("commit", buildInfo.Commit()).
		Msg("build info")

	svc, err := backend.New(cfg.Backend, log)
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sessions store.SessionRepository
	if cfg.Storage.Persist {
		storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return fmt.Errorf("create local storage: %w", err)
		}
		defer storages.Close()
		sessions = storages.SessionRepository
	}

	ui, err := tui.New(svc, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(cfg, svc, sessions, ui, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		return fmt.Errorf("client run: %w", err)
	}
	return nil
}
