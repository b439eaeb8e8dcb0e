package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/prefs"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// Services aggregates every service of prefsd and the local prefsctl.
type Services struct {
	PreferenceService PreferenceService
	KeyService        KeyService
	TokenService      TokenService
	AppInfoService    AppInfoService

	// Prefs is the codec bound to the loaded registry. The autosave worker
	// flushes through it.
	Prefs *prefs.Prefs
}

// NewServices loads the key registry from storages and wires every service
// on top of it.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	registry, err := LoadKeyRegistry(ctx, storages.Keys, cfg.DelimiterRune(), logger)
	if err != nil {
		return nil, fmt.Errorf("error loading key registry: %w", err)
	}

	p := prefs.New(storages.Preferences, registry, logger)

	return &Services{
		PreferenceService: NewPreferenceService(p, logger),
		KeyService:        NewKeyService(registry, storages.Keys, logger),
		TokenService:      NewTokenService(cfg.Auth, logger),
		AppInfoService:    NewAppInfoService(buildInfo, logger),
		Prefs:             p,
	}, nil
}
