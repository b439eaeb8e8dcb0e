package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidPrefsConfigs indicates an unusable delimiter or a negative
	// default key index.
	ErrInvalidPrefsConfigs = errors.New("invalid prefs configuration")
	// ErrInvalidAuthConfigs indicates a token sign key that is too short or
	// a non-positive token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidWorkerConfigs indicates a negative autosave interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
