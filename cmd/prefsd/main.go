package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/handler"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/server"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
	"github.com/MKhiriev/go-prefs-keeper/internal/workers"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const finalFlushTimeout = 10 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("prefsd", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("prefsd", cfg.Log.Level)
	log.Debug().
		Str("dsn", cfg.Storage.DB.DSN).
		Str("address", cfg.Server.HTTPAddress).
		Dur("autosave", cfg.Workers.AutoSaveInterval).
		Bool("admin_api", cfg.Auth.TokenSignKey != "").
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(ctx, storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(cfg.Workers, services.PreferenceService, log)
	bg.Start(ctx)

	runErr := srv.RunServer(ctx)
	bg.Stop()

	flushCtx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
	err = services.PreferenceService.Flush(flushCtx)
	cancel()
	if err != nil {
		log.Err(err).Msg("final flush failed")
	}
	if err = storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}

	if runErr != nil {
		log.Err(runErr).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
