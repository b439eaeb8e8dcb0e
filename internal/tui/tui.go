// Package tui is the interactive preference browser behind
// "prefsctl browse".
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

type TUI struct {
	prefs     service.PreferenceService
	keys      service.KeyService
	buildInfo models.AppBuildInfo
	source    string
	logger    *logger.Logger
}

// New builds a browser over prefs and keys. source names where they come
// from (a store DSN or a server address) for the About tab.
func New(prefs service.PreferenceService, keys service.KeyService, buildInfo models.AppBuildInfo,
	source string, logger *logger.Logger) *TUI {
	return &TUI{prefs: prefs, keys: keys, buildInfo: buildInfo, source: source, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newBrowserModel(ctx, t.prefs, t.keys, t.buildInfo, t.source)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("browser exited with error")
		return err
	}
	return nil
}
