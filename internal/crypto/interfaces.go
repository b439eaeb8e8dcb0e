package crypto

import "github.com/MKhiriev/go-prefs-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/key_registry_mock.go -package=mock

// KeyRegistry owns the ordered list of AES credentials used by the
// preference codec. Keys and IVs are kept in two parallel lists that
// always have the same length; index i of one belongs to index i of the
// other.
//
// Implementations must be safe for concurrent use: codec operations read
// keys from many goroutines while administrative mutations are rare.
type KeyRegistry interface {
	// AddKeyAndIV appends a credential. Both slices are validated first and
	// ErrInvalidCredential is returned if either has the wrong length; in
	// that case the registry is left untouched.
	AddKeyAndIV(key, iv []byte) error

	// ValidateKeyAndIV reports whether key and iv could be added. It never
	// mutates the registry.
	ValidateKeyAndIV(key, iv []byte) bool

	// RemoveAt removes the credential at index from both lists.
	RemoveAt(index int) error

	// Count returns the number of credentials. It fails with
	// ErrInternalInconsistency if the key and IV lists ever diverge.
	Count() (int, error)

	// GetKey returns a copy of the key at index.
	GetKey(index int) ([]byte, error)

	// GetIV returns a copy of the IV at index.
	GetIV(index int) ([]byte, error)

	// Record returns the key and IV at index read under a single lock, so
	// a concurrent mutation can't pair a key with a foreign IV.
	Record(index int) (models.KeyRecord, error)

	// Records returns copies of every credential in order.
	Records() []models.KeyRecord

	// ReplaceAll validates every record and, only if all are valid, swaps
	// the registry contents for them.
	ReplaceAll(records []models.KeyRecord) error

	// ClearAll removes every credential.
	ClearAll()

	// Delimiter returns the separator used for sequences and byte tokens.
	Delimiter() rune

	// SetDelimiter changes the separator. A zero rune resets it to
	// models.DefaultDelimiter.
	SetDelimiter(delimiter rune) error
}
