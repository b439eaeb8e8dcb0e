// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of prefsd and prefsctl.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Prefs holds codec settings shared by every component.
	Prefs Prefs `envPrefix:"PREFS_"`

	// Storage holds the preference store and key repository backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Backup holds the default location of key backup files.
	Backup Backup `envPrefix:"BACKUP_"`

	// Server holds the HTTP listener settings of prefsd.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the JWT settings protecting the key admin API.
	Auth Auth `envPrefix:"AUTH_"`

	// Adapter holds the remote server settings of prefsctl --remote.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a .env file loaded before the
	// environment is parsed. Env: ENV_FILE, flag: -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// Prefs holds codec settings.
type Prefs struct {
	// Delimiter joins sequence elements and ciphertext byte tokens. It must
	// be a single character accepted by models.ValidDelimiter. It only
	// seeds an empty key repository; a delimiter saved with the keys takes
	// precedence.
	// Env: PREFS_DELIMITER
	Delimiter string `env:"DELIMITER"`

	// DefaultKeyIndex is the registry index used when a request asks for
	// encryption without naming a key.
	// Env: PREFS_DEFAULT_KEY_INDEX
	DefaultKeyIndex int `env:"DEFAULT_KEY_INDEX"`
}

// Storage groups the storage backend configuration.
type Storage struct {
	// DB holds the backend DSN.
	DB DB `envPrefix:"DB_"`
}

// DB selects the storage backend, see store.NewStorages.
type DB struct {
	// DSN is "memory", a path ending in ".json", a SQLite file path or a
	// postgres:// URL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Backup holds key backup settings.
type Backup struct {
	// Dir is where backup files are written when no explicit path is
	// given.
	// Env: BACKUP_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds the admin token settings.
type Auth struct {
	// TokenSignKey signs and verifies admin JWTs. The key admin API is
	// disabled while it is empty.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds the settings of the HTTP client talking to prefsd.
type Adapter struct {
	// HTTPAddress is the base URL of the server, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the admin JWT sent with key management requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds background worker settings.
type Workers struct {
	// AutoSaveInterval is how often the preference store is flushed in the
	// background. Zero disables the autosave worker.
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutoSaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name: debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied to fields still empty after every source is merged.
const (
	DefaultDelimiter      = "|"
	DefaultDSN            = "prefs.db"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "go-prefs-keeper"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultAdapterTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
	DefaultBackupDir      = "."
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Prefs.Delimiter == "" {
		cfg.Prefs.Delimiter = DefaultDelimiter
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Backup.Dir == "" {
		cfg.Backup.Dir = DefaultBackupDir
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// DelimiterRune returns the configured delimiter as a rune. Call it only
// on a validated config.
func (cfg *StructuredConfig) DelimiterRune() rune {
	for _, r := range cfg.Prefs.Delimiter {
		return r
	}
	return '|'
}

// GetStructuredConfig loads the server configuration. Sources, from lowest
// to highest priority:
//  1. JSON file (path from -c/-config or CONFIG)
//  2. .env file (path from -env-file or ENV_FILE, default ".env" if present)
//  3. Environment variables
//  4. Command-line flags parsed from args
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(envFileFromArgs(args)).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetCLIConfig loads the prefsctl configuration from the same sources as
// [GetStructuredConfig] except flags, which prefsctl parses itself. A
// non-empty jsonPath overrides CONFIG.
func GetCLIConfig(jsonPath, envFile string) (*StructuredConfig, error) {
	b := newConfigBuilder().
		withDotEnv(envFile).
		withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}
	return b.withJSON().build()
}
