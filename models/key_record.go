// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"unicode"
	"unicode/utf8"
)

const (
	// KeySize is the required length of an encryption key in bytes.
	// The registry enforces 32 bytes (an AES-256 sized key) even though
	// the product has always advertised the scheme as "AES128".
	KeySize = 32

	// IVSize is the required length of an initialization vector in bytes,
	// equal to the AES block size.
	IVSize = 16

	// DefaultDelimiter joins sequence elements and ciphertext byte tokens.
	DefaultDelimiter = '|'
)

// ValidDelimiter reports whether d can separate sequence elements and
// ciphertext byte tokens. Letters, digits, signs and the decimal point
// occur inside encoded bools and numbers, so they are rejected.
func ValidDelimiter(d rune) bool {
	if d == utf8.RuneError || unicode.IsLetter(d) || unicode.IsDigit(d) {
		return false
	}
	switch d {
	case '-', '+', '.':
		return false
	}
	return true
}

// KeyRecord is one encryption credential: a key and the IV used with it.
type KeyRecord struct {
	Key []byte `json:"key"`
	IV  []byte `json:"iv"`
}

// Valid reports whether both fields have exactly the required lengths.
func (r KeyRecord) Valid() bool {
	return len(r.Key) == KeySize && len(r.IV) == IVSize
}

// Clone returns a deep copy so callers can't mutate the original slices.
func (r KeyRecord) Clone() KeyRecord {
	return KeyRecord{
		Key: append([]byte(nil), r.Key...),
		IV:  append([]byte(nil), r.IV...),
	}
}

// KeyInfo is a listing-safe view of a KeyRecord. It never carries raw
// key material, only a fingerprint.
type KeyInfo struct {
	Index       int    `json:"index"`
	Fingerprint string `json:"fingerprint"`
}
