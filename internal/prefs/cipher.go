// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prefs

import (
	"github.com/MKhiriev/go-prefs-keeper/internal/codec"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
)

// EncryptBytes encrypts the UTF-8 plain token of v with the credential at
// keyIndex and returns the raw ciphertext.
func EncryptBytes[T codec.Value](p *Prefs, v T, keyIndex int) ([]byte, error) {
	record, err := p.keys.Record(keyIndex)
	if err != nil {
		return nil, err
	}
	return crypto.EncryptString(codec.EncodeValue(v, p.keys.Delimiter()), record)
}

// Encrypt is EncryptBytes with the ciphertext rendered as a decimal byte
// token, ready for the string slot.
func Encrypt[T codec.Value](p *Prefs, v T, keyIndex int) (string, error) {
	ciphertext, err := EncryptBytes(p, v, keyIndex)
	if err != nil {
		return "", err
	}
	return codec.EncodeBytes(ciphertext, p.keys.Delimiter()), nil
}

// Decrypt reverses Encrypt.
func Decrypt[T codec.Value](p *Prefs, token string, keyIndex int) (T, error) {
	ciphertext, err := codec.DecodeBytes(token, p.keys.Delimiter())
	if err != nil {
		var zero T
		return zero, err
	}
	return DecryptBytes[T](p, ciphertext, keyIndex)
}

// DecryptBytes reverses EncryptBytes.
func DecryptBytes[T codec.Value](p *Prefs, ciphertext []byte, keyIndex int) (T, error) {
	var zero T

	record, err := p.keys.Record(keyIndex)
	if err != nil {
		return zero, err
	}

	plain, err := crypto.DecryptString(ciphertext, record)
	if err != nil {
		return zero, err
	}
	return codec.DecodeValue[T](plain, p.keys.Delimiter())
}
