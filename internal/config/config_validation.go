// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// minTokenSignKeyLen is the shortest accepted HMAC signing key.
const minTokenSignKeyLen = 16

// validate checks the merged [StructuredConfig] after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	d := cfg.Prefs.Delimiter
	if utf8.RuneCountInString(d) != 1 {
		return fmt.Errorf("%w: delimiter must be exactly one character, got %q", ErrInvalidPrefsConfigs, d)
	}
	if r, _ := utf8.DecodeRuneInString(d); !models.ValidDelimiter(r) {
		return fmt.Errorf("%w: delimiter %q can't be a letter, digit, sign or decimal point", ErrInvalidPrefsConfigs, d)
	}
	if cfg.Prefs.DefaultKeyIndex < 0 {
		return fmt.Errorf("%w: default key index is negative", ErrInvalidPrefsConfigs)
	}

	if cfg.Auth.TokenSignKey != "" && len(cfg.Auth.TokenSignKey) < minTokenSignKeyLen {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAuthConfigs, minTokenSignKeyLen)
	}
	if cfg.Auth.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration is negative", ErrInvalidAuthConfigs)
	}

	if cfg.Workers.AutoSaveInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
