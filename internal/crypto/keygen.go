// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// SaltSize is the length of salts produced by [GenerateSalt].
const SaltSize = 16

// GenerateKeyAndIV returns a fresh credential read from the OS CSPRNG.
func GenerateKeyAndIV() (models.KeyRecord, error) {
	return generateKeyAndIV(rand.Reader)
}

func generateKeyAndIV(r io.Reader) (models.KeyRecord, error) {
	key := make([]byte, models.KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return models.KeyRecord{}, fmt.Errorf("generate key: %w", err)
	}

	iv := make([]byte, models.IVSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		return models.KeyRecord{}, fmt.Errorf("generate iv: %w", err)
	}

	return models.KeyRecord{Key: key, IV: iv}, nil
}

// GenerateSalt returns SaltSize random bytes for use with [KeyDeriver].
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// KeyDeriver derives reproducible credentials from a passphrase with
// Argon2id, so the same registry can be rebuilt on another machine from
// the passphrase and salt alone.
type KeyDeriver struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyDeriver constructs a [KeyDeriver] with the OWASP recommended
// Argon2id parameters (1 iteration, 64 MiB, 4 threads).
func NewKeyDeriver() *KeyDeriver {
	return &KeyDeriver{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}
}

// Derive stretches passphrase and salt into KeySize+IVSize bytes and splits
// them into a key and an IV.
func (d *KeyDeriver) Derive(passphrase string, salt []byte) (models.KeyRecord, error) {
	if passphrase == "" {
		return models.KeyRecord{}, fmt.Errorf("%w: empty passphrase", ErrInvalidCredential)
	}
	if len(salt) < 8 {
		return models.KeyRecord{}, fmt.Errorf("%w: salt must be at least 8 bytes", ErrInvalidCredential)
	}

	material := argon2.IDKey(
		[]byte(passphrase),
		salt,
		d.argonTime,
		d.argonMemory,
		d.argonThreads,
		models.KeySize+models.IVSize,
	)

	return models.KeyRecord{
		Key: material[:models.KeySize],
		IV:  material[models.KeySize:],
	}, nil
}

// DeriveKeyAndIV is shorthand for NewKeyDeriver().Derive.
func DeriveKeyAndIV(passphrase string, salt []byte) (models.KeyRecord, error) {
	return NewKeyDeriver().Derive(passphrase, salt)
}
