// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup writes the key registry to a portable text file and
// restores it.
//
// Every credential is one line: base64(base64(key) + "," + base64(iv)),
// using the standard padded alphabet. Lines are separated by "\n"; "\r\n"
// and a leading UTF-8 byte order mark are accepted on import. Blank lines
// are ignored.
//
// Import is all-or-nothing: every line is decoded and validated before the
// registry is touched, and a successful import replaces the registry
// contents.
package backup

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

var (
	// ErrNothingToBackup is returned when exporting an empty registry.
	ErrNothingToBackup = errors.New("there are no keys to back up")

	// ErrEmptyBackup is returned when the backup holds no credential lines.
	ErrEmptyBackup = errors.New("backup is empty")

	// ErrCorruptBackup is returned when a line can't be decoded or holds a
	// credential of the wrong size.
	ErrCorruptBackup = errors.New("backup is corrupt")
)

const fieldSeparator = ","

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// EncodeLine returns the backup line of one credential.
func EncodeLine(r models.KeyRecord) string {
	inner := base64.StdEncoding.EncodeToString(r.Key) + fieldSeparator + base64.StdEncoding.EncodeToString(r.IV)
	return base64.StdEncoding.EncodeToString([]byte(inner))
}

// DecodeLine parses one backup line. The credential is validated with
// validate, which is usually KeyRegistry.ValidateKeyAndIV.
func DecodeLine(line string, validate func(key, iv []byte) bool) (models.KeyRecord, error) {
	inner, err := base64.StdEncoding.DecodeString(strings.TrimSpace(line))
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("decode line: %w", err)
	}

	parts := strings.Split(string(inner), fieldSeparator)
	if len(parts) != 2 {
		return models.KeyRecord{}, fmt.Errorf("expected 2 fields, got %d", len(parts))
	}

	key, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("decode key: %w", err)
	}
	iv, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("decode iv: %w", err)
	}

	if !validate(key, iv) {
		return models.KeyRecord{}, fmt.Errorf("%w: key=%d iv=%d bytes", crypto.ErrInvalidCredential, len(key), len(iv))
	}
	return models.KeyRecord{Key: key, IV: iv}, nil
}

// Export writes every credential of keys to w.
func Export(w io.Writer, keys crypto.KeyRegistry) error {
	count, err := keys.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNothingToBackup
	}

	bw := bufio.NewWriter(w)
	for _, r := range keys.Records() {
		if _, err = bw.WriteString(EncodeLine(r) + "\n"); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}
	return bw.Flush()
}

// ExportFile writes the backup to path with owner-only permissions.
func ExportFile(path string, keys crypto.KeyRegistry) error {
	var buf bytes.Buffer
	if err := Export(&buf, keys); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	return nil
}

// Parse decodes and validates every line of r without touching any
// registry.
func Parse(r io.Reader, validate func(key, iv []byte) bool) ([]models.KeyRecord, error) {
	sc := bufio.NewScanner(r)

	var (
		records []models.KeyRecord
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if lineNo == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		rec, err := DecodeLine(string(line), validate)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptBackup, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyBackup
	}
	return records, nil
}

// Import replaces the contents of keys with the credentials in r and
// returns how many were restored. On any error keys is left unchanged.
func Import(r io.Reader, keys crypto.KeyRegistry) (int, error) {
	records, err := Parse(r, keys.ValidateKeyAndIV)
	if err != nil {
		return 0, err
	}
	if err = keys.ReplaceAll(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ImportFile is Import reading from the file at path.
func ImportFile(path string, keys crypto.KeyRegistry) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	return Import(f, keys)
}
