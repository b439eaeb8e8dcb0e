package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// memoryStore keeps preferences for the lifetime of the process only.
type memoryStore struct {
	*prefsCache
}

// NewMemoryStore returns a PreferenceStore without durable backing. Save
// only resets change tracking.
func NewMemoryStore() PreferenceStore {
	return &memoryStore{prefsCache: newPrefsCache()}
}

func (m *memoryStore) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.takeChanges()
	return nil
}

// memoryKeyRepository keeps the key registry for the lifetime of the
// process only.
type memoryKeyRepository struct {
	mu        sync.RWMutex
	records   []models.KeyRecord
	delimiter rune
}

func NewMemoryKeyRepository() KeyRepository {
	return &memoryKeyRepository{}
}

func (m *memoryKeyRepository) LoadKeys(ctx context.Context) ([]models.KeyRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.KeyRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (m *memoryKeyRepository) SaveKeys(ctx context.Context, records []models.KeyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make([]models.KeyRecord, 0, len(records))
	for _, r := range records {
		m.records = append(m.records, r.Clone())
	}
	return nil
}

func (m *memoryKeyRepository) LoadDelimiter(ctx context.Context) (rune, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.delimiter, nil
}

func (m *memoryKeyRepository) SaveDelimiter(ctx context.Context, delimiter rune) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.delimiter = delimiter
	return nil
}
