// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// keyRegistry is the private implementation of [KeyRegistry].
type keyRegistry struct {
	mu sync.RWMutex

	keys [][]byte
	ivs  [][]byte

	delimiter rune
}

// NewKeyRegistry constructs an empty [KeyRegistry] using delimiter as the
// token separator. A zero delimiter selects [models.DefaultDelimiter].
func NewKeyRegistry(delimiter rune) KeyRegistry {
	r := &keyRegistry{
		keys:      make([][]byte, 0),
		ivs:       make([][]byte, 0),
		delimiter: models.DefaultDelimiter,
	}
	if delimiter != 0 && models.ValidDelimiter(delimiter) {
		r.delimiter = delimiter
	}
	return r
}

// AddKeyAndIV implements [KeyRegistry].
func (r *keyRegistry) AddKeyAndIV(key, iv []byte) error {
	if !r.ValidateKeyAndIV(key, iv) {
		return fmt.Errorf("%w: got key=%d iv=%d bytes", ErrInvalidCredential, len(key), len(iv))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = append(r.keys, clone(key))
	r.ivs = append(r.ivs, clone(iv))
	return nil
}

// ValidateKeyAndIV implements [KeyRegistry].
func (r *keyRegistry) ValidateKeyAndIV(key, iv []byte) bool {
	return len(key) == models.KeySize && len(iv) == models.IVSize
}

// RemoveAt implements [KeyRegistry].
func (r *keyRegistry) RemoveAt(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkIndex(index); err != nil {
		return err
	}

	r.keys = append(r.keys[:index], r.keys[index+1:]...)
	r.ivs = append(r.ivs[:index], r.ivs[index+1:]...)
	return nil
}

// Count implements [KeyRegistry].
func (r *keyRegistry) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.keys) != len(r.ivs) {
		return 0, ErrInternalInconsistency
	}
	return len(r.keys), nil
}

// GetKey implements [KeyRegistry].
func (r *keyRegistry) GetKey(index int) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.checkIndex(index); err != nil {
		return nil, err
	}
	return clone(r.keys[index]), nil
}

// GetIV implements [KeyRegistry].
func (r *keyRegistry) GetIV(index int) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.checkIndex(index); err != nil {
		return nil, err
	}
	return clone(r.ivs[index]), nil
}

// Record implements [KeyRegistry].
func (r *keyRegistry) Record(index int) (models.KeyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.checkIndex(index); err != nil {
		return models.KeyRecord{}, err
	}
	return models.KeyRecord{Key: clone(r.keys[index]), IV: clone(r.ivs[index])}, nil
}

// Records implements [KeyRegistry].
func (r *keyRegistry) Records() []models.KeyRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.KeyRecord, 0, len(r.keys))
	for i := range r.keys {
		records = append(records, models.KeyRecord{Key: clone(r.keys[i]), IV: clone(r.ivs[i])})
	}
	return records
}

// ReplaceAll implements [KeyRegistry].
func (r *keyRegistry) ReplaceAll(records []models.KeyRecord) error {
	keys := make([][]byte, 0, len(records))
	ivs := make([][]byte, 0, len(records))
	for i, rec := range records {
		if !r.ValidateKeyAndIV(rec.Key, rec.IV) {
			return fmt.Errorf("%w: record %d", ErrInvalidCredential, i)
		}
		keys = append(keys, clone(rec.Key))
		ivs = append(ivs, clone(rec.IV))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = keys
	r.ivs = ivs
	return nil
}

// ClearAll implements [KeyRegistry].
func (r *keyRegistry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = make([][]byte, 0)
	r.ivs = make([][]byte, 0)
}

// Delimiter implements [KeyRegistry].
func (r *keyRegistry) Delimiter() rune {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.delimiter
}

// SetDelimiter implements [KeyRegistry].
func (r *keyRegistry) SetDelimiter(delimiter rune) error {
	if delimiter == 0 {
		delimiter = models.DefaultDelimiter
	}
	if !models.ValidDelimiter(delimiter) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, delimiter)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.delimiter = delimiter
	return nil
}

// checkIndex must be called with r.mu held.
func (r *keyRegistry) checkIndex(index int) error {
	if len(r.keys) != len(r.ivs) {
		return ErrInternalInconsistency
	}
	if index < 0 || index >= len(r.keys) {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(r.keys))
	}
	return nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
