// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// EncryptCBC encrypts plaintext with AES in CBC mode under key and iv,
// applying PKCS#7 padding first. The key size selects the AES variant
// (the registry always hands out 32-byte keys, i.e. AES-256); iv must be
// exactly one block long.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: iv is %d bytes", ErrInvalidCredential, len(iv))
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// DecryptCBC reverses [EncryptCBC]. It returns ErrInvalidCiphertext if the
// input is not a non-empty multiple of the block size and ErrInvalidPadding
// if the padding check fails after decryption.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: iv is %d bytes", ErrInvalidCredential, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, ErrInvalidCiphertext
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, block.BlockSize())
}

// EncryptString encrypts the UTF-8 bytes of s with the given credential.
func EncryptString(s string, record models.KeyRecord) ([]byte, error) {
	return EncryptCBC([]byte(s), record.Key, record.IV)
}

// DecryptString decrypts ciphertext with the given credential and returns
// the plaintext as a string.
func DecryptString(ciphertext []byte, record models.KeyRecord) (string, error) {
	plaintext, err := DecryptCBC(ciphertext, record.Key, record.IV)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
