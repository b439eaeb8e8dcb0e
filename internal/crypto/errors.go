// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Registry errors. Callers match them with [errors.Is].
var (
	// ErrInvalidCredential is returned when a key is not 32 bytes or an IV
	// is not 16 bytes long.
	ErrInvalidCredential = errors.New("invalid credential: key must be 32 bytes and iv 16 bytes")

	// ErrIndexOutOfRange is returned for a registry index outside [0, count).
	ErrIndexOutOfRange = errors.New("key index out of range")

	// ErrInternalInconsistency means the key and IV lists have different
	// lengths. It can only happen if the registry was mutated bypassing
	// its methods.
	ErrInternalInconsistency = errors.New("the key and iv lists have different lengths")

	// ErrInvalidDelimiter is returned by SetDelimiter for separators that
	// also occur inside encoded values. See models.ValidDelimiter.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

// Cipher errors.
var (
	// ErrInvalidCiphertext is returned when the ciphertext is empty or not a
	// whole number of AES blocks.
	ErrInvalidCiphertext = errors.New("invalid ciphertext: length is not a multiple of the block size")

	// ErrInvalidPadding is returned when the PKCS#7 padding of a decrypted
	// message is malformed, usually because the wrong key was used.
	ErrInvalidPadding = errors.New("invalid padding")
)
