package store

import (
	"context"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PreferenceStore is a flat, case-sensitive key-value store with three
// native slots: float32, int32 and string. Writes stay in memory until
// Save flushes them to durable storage.
//
// Getters return def when the key is missing or holds a different slot
// kind.
type PreferenceStore interface {
	SetFloat(key string, value float32)
	GetFloat(key string, def float32) float32
	SetInt(key string, value int32)
	GetInt(key string, def int32) int32
	SetString(key string, value string)
	GetString(key string, def string) string

	HasKey(key string) bool
	DeleteKey(key string)
	DeleteAll()

	// Keys returns every stored key in lexical order.
	Keys() []string
	// Entry returns the stored entry with its slot kind.
	Entry(key string) (models.Preference, bool)

	// Save flushes pending writes and deletions.
	Save(ctx context.Context) error
}

// KeyRepository persists the encryption key registry and its delimiter.
type KeyRepository interface {
	// LoadKeys returns the stored credentials in registry order.
	LoadKeys(ctx context.Context) ([]models.KeyRecord, error)
	// SaveKeys replaces every stored credential with records.
	SaveKeys(ctx context.Context, records []models.KeyRecord) error
	// LoadDelimiter returns the stored delimiter, or 0 if none was saved.
	LoadDelimiter(ctx context.Context) (rune, error)
	SaveDelimiter(ctx context.Context, delimiter rune) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
