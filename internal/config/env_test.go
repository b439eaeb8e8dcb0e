package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("PREFS_DELIMITER", ";")
	t.Setenv("PREFS_DEFAULT_KEY_INDEX", "2")
	t.Setenv("STORAGE_DB_DSN", "postgres://u:p@localhost:5432/prefs")
	t.Setenv("BACKUP_DIR", "/var/backups")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "15s")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "0123456789abcdef")
	t.Setenv("AUTH_TOKEN_ISSUER", "issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("ADAPTER_TOKEN", "tok")
	t.Setenv("WORKERS_AUTOSAVE_INTERVAL", "1m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONFIG", "/etc/prefs.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, ";", cfg.Prefs.Delimiter)
	assert.Equal(t, 2, cfg.Prefs.DefaultKeyIndex)
	assert.Equal(t, "postgres://u:p@localhost:5432/prefs", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/backups", cfg.Backup.Dir)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "0123456789abcdef", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "tok", cfg.Adapter.Token)
	assert.Equal(t, time.Minute, cfg.Workers.AutoSaveInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/prefs.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "forever")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("PREFS_DEFAULT_KEY_INDEX", "first")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
