package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/handler"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/server"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.Filled("N/A"))

	log := logger.NewLogger("go-user-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if buildInfo.Stamped() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run owns every resource opened after configuration, so storages are
// closed on both clean and failed exits.
func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	var profileAdapter adapter.ProfileAdapter
	if cfg.Adapter.Disabled {
		log.Info().Msg("profile enrichment disabled")
	} else {
		profileAdapter, err = adapter.NewHTTPProfileAdapter(cfg.Adapter, log)
		if err != nil {
			return fmt.Errorf("error creating profile adapter: %w", err)
		}
	}

	services, err := service.NewServices(storages, profileAdapter, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting server")

	return srv.RunServer()
}
