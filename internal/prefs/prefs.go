// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prefs saves and loads typed values in a [store.PreferenceStore],
// optionally encrypted with a credential from a [crypto.KeyRegistry].
//
// Plain values go to the native slot that fits them: float32 to the float
// slot, int32 to the int slot, everything else to the string slot as its
// codec token. Encrypted values are always stored as the decimal byte
// token of the ciphertext in the string slot.
//
// Fetch and FetchEncrypted report every failure. Load and LoadEncrypted
// wrap them and return the caller's default instead, so a corrupt or
// missing preference never reaches the caller as an error.
package prefs

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prefs-keeper/internal/codec"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// Prefs binds a preference store to the key registry used for encrypted
// values.
type Prefs struct {
	store  store.PreferenceStore
	keys   crypto.KeyRegistry
	logger *logger.Logger
}

func New(s store.PreferenceStore, keys crypto.KeyRegistry, log *logger.Logger) *Prefs {
	if log == nil {
		log = logger.Nop()
	}
	return &Prefs{store: s, keys: keys, logger: log}
}

// Store returns the underlying preference store.
func (p *Prefs) Store() store.PreferenceStore {
	return p.store
}

// Keys returns the key registry.
func (p *Prefs) Keys() crypto.KeyRegistry {
	return p.keys
}

// Delete removes key from the store.
func (p *Prefs) Delete(key string) {
	p.store.DeleteKey(key)
}

// HasKey reports whether key is in the store.
func (p *Prefs) HasKey(key string) bool {
	return p.store.HasKey(key)
}

// Flush makes every write so far durable.
func (p *Prefs) Flush(ctx context.Context) error {
	if err := p.store.Save(ctx); err != nil {
		p.logger.Err(err).Str("func", "Prefs.Flush").Msg("failed to flush preference store")
		return err
	}
	return nil
}

// SlotFor returns the native slot a plain value of type T is saved in.
func SlotFor[T codec.Value]() models.SlotKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return models.SlotFloat
	case int32:
		return models.SlotInt
	default:
		return models.SlotString
	}
}

// Save writes v under key in its best-fit native slot. No encryption is
// applied; see SaveEncrypted.
func Save[T codec.Value](p *Prefs, key string, v T) {
	switch x := any(v).(type) {
	case float32:
		p.store.SetFloat(key, x)
	case int32:
		p.store.SetInt(key, x)
	default:
		p.store.SetString(key, codec.EncodeValue(v, p.keys.Delimiter()))
	}
}

// SaveEncrypted encrypts v with the credential at keyIndex and writes the
// resulting token under key in the string slot.
func SaveEncrypted[T codec.Value](p *Prefs, key string, v T, keyIndex int) error {
	token, err := Encrypt(p, v, keyIndex)
	if err != nil {
		return err
	}
	p.store.SetString(key, token)
	return nil
}

// SaveBytes writes b under key as a decimal byte token.
func SaveBytes(p *Prefs, key string, b []byte) {
	p.store.SetString(key, codec.EncodeBytes(b, p.keys.Delimiter()))
}

// Fetch reads the plain value stored under key.
func Fetch[T codec.Value](p *Prefs, key string) (T, error) {
	var zero T

	entry, ok := p.store.Entry(key)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if want := SlotFor[T](); entry.Kind != want {
		return zero, fmt.Errorf("%w: %q is %s, want %s", ErrSlotMismatch, key, entry.Kind, want)
	}

	switch any(zero).(type) {
	case float32:
		return any(entry.Float).(T), nil
	case int32:
		return any(entry.Int).(T), nil
	default:
		return codec.DecodeValue[T](entry.String, p.keys.Delimiter())
	}
}

// FetchEncrypted reads the encrypted token stored under key and decrypts
// it with the credential at keyIndex.
func FetchEncrypted[T codec.Value](p *Prefs, key string, keyIndex int) (T, error) {
	var zero T

	entry, ok := p.store.Entry(key)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if entry.Kind != models.SlotString {
		return zero, fmt.Errorf("%w: %q is %s, want %s", ErrSlotMismatch, key, entry.Kind, models.SlotString)
	}

	return Decrypt[T](p, entry.String, keyIndex)
}

// Load returns the plain value stored under key, or def if it is missing
// or can't be decoded.
func Load[T codec.Value](p *Prefs, def T, key string) T {
	v, err := Fetch[T](p, key)
	if err != nil {
		p.logger.Debug().Err(err).
			Str("func", "prefs.Load").
			Str("key", key).
			Msg("returning default value")
		return def
	}
	return v
}

// LoadEncrypted returns the decrypted value stored under key, or def if it
// is missing, can't be decrypted or can't be decoded.
func LoadEncrypted[T codec.Value](p *Prefs, def T, key string, keyIndex int) T {
	v, err := FetchEncrypted[T](p, key, keyIndex)
	if err != nil {
		p.logger.Debug().Err(err).
			Str("func", "prefs.LoadEncrypted").
			Str("key", key).
			Int("key_index", keyIndex).
			Msg("returning default value")
		return def
	}
	return v
}

// LoadBytes returns the byte token stored under key decoded, or def.
func LoadBytes(p *Prefs, def []byte, key string) []byte {
	entry, ok := p.store.Entry(key)
	if !ok || entry.Kind != models.SlotString {
		return def
	}
	b, err := codec.DecodeBytes(entry.String, p.keys.Delimiter())
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "prefs.LoadBytes").Str("key", key).Msg("returning default value")
		return def
	}
	return b
}
