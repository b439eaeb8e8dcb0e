package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// fingerprintSize is the number of digest bytes shown in a fingerprint.
const fingerprintSize = 8

// KeyFingerprint returns a short hex SHA-256 digest of a credential's key
// and IV. Listings show it in place of key material so operators can tell
// credentials apart without exposing them.
//
// Example usage:
//
//	fp := utils.KeyFingerprint(record) // "9f86d081884c7d65"
func KeyFingerprint(r models.KeyRecord) string {
	h := sha256.New()
	h.Write(r.Key)
	h.Write(r.IV)
	return hex.EncodeToString(h.Sum(nil)[:fingerprintSize])
}

// KeyInfos returns the listing-safe view of records.
func KeyInfos(records []models.KeyRecord) []models.KeyInfo {
	infos := make([]models.KeyInfo, 0, len(records))
	for i, r := range records {
		infos = append(infos, models.KeyInfo{Index: i, Fingerprint: KeyFingerprint(r)})
	}
	return infos
}
