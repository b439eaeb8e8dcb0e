package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "2026-10-18", "abc123")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "1.2.3", got.BuildVersion())
	assert.Equal(t, "abc123", got.BuildCommit())
	assert.Contains(t, got.String(), "Build date: 2026-10-18")
}

func TestAppInfoService_UnsetValues(t *testing.T) {
	svc := NewAppInfoService(models.AppBuildInfo{}, logger.Nop())

	assert.Contains(t, svc.GetAppVersion(context.Background()).String(), "Build version: N/A")
}
