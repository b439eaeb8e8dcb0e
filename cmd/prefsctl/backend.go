package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-prefs-keeper/internal/adapter"
	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
)

// backend is where prefsctl commands send their requests: the local
// services over a store, or the REST adapters of a remote prefsd. Both
// satisfy the same service interfaces.
type backend struct {
	prefs service.PreferenceService
	keys  service.KeyService

	// version is set only for a remote backend.
	version adapter.VersionAdapter

	cfg    *config.StructuredConfig
	log    *logger.Logger
	source string

	closeFn func() error
}

// loadConfig merges the config sources and applies the global flags on
// top of them.
func loadConfig(cmd *cli.Command) (*config.StructuredConfig, error) {
	cfg, err := config.GetCLIConfig(cmd.String("config"), cmd.String("env-file"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("dsn") {
		cfg.Storage.DB.DSN = cmd.String("dsn")
	}
	if cmd.IsSet("address") {
		cfg.Adapter.HTTPAddress = cmd.String("address")
	}
	if cmd.IsSet("token") {
		cfg.Adapter.Token = cmd.String("token")
	}
	cfg.Log.Level = cmd.String("log-level")
	return cfg, nil
}

func openBackend(ctx context.Context, cmd *cli.Command) (*backend, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	log := logger.NewCLILogger("prefsctl", cfg.Log.Level)

	if cmd.Bool("remote") {
		adapters, err := adapter.NewHTTPAdapters(cfg.Adapter, log)
		if err != nil {
			return nil, err
		}
		return &backend{
			prefs:   adapters.Preferences,
			keys:    adapters.Keys,
			version: adapters.Version,
			cfg:     cfg,
			log:     log,
			source:  cfg.Adapter.HTTPAddress,
			closeFn: func() error { return nil },
		}, nil
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(ctx, storages, *cfg, buildInfo(), log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &backend{
		prefs:   services.PreferenceService,
		keys:    services.KeyService,
		cfg:     cfg,
		log:     log,
		source:  cfg.Storage.DB.DSN,
		closeFn: storages.Close,
	}, nil
}

func (b *backend) Close() {
	if err := b.closeFn(); err != nil {
		b.log.Err(err).Str("func", "backend.Close").Msg("error closing storages")
	}
}

// withBackend opens the backend for the duration of fn.
func withBackend(fn func(ctx context.Context, cmd *cli.Command, b *backend) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		b, err := openBackend(ctx, cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		return fn(ctx, cmd, b)
	}
}

// keyIndex is --key-index when given, the configured default otherwise.
func (b *backend) keyIndex(cmd *cli.Command) (int, error) {
	if !cmd.IsSet("key-index") {
		return b.cfg.Prefs.DefaultKeyIndex, nil
	}
	idx := cmd.Int("key-index")
	if idx < 0 {
		return 0, errInvalidIndex
	}
	return idx, nil
}
