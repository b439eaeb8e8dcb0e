package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PreferenceService is the dynamically typed face of the preference codec
// used by the REST API and the CLI. Values travel as plain text in codec
// form; sequences are joined with the registry delimiter.
type PreferenceService interface {
	// List returns every stored entry in key order.
	List(ctx context.Context) ([]models.PreferenceEntry, error)
	// Get decodes the entry under req.Key as req.Type, decrypting it first
	// when req.Encrypted is set.
	Get(ctx context.Context, req models.GetPreferenceRequest) (models.TypedValue, error)
	// Set parses req.Value as req.Type and stores it under key. Nothing is
	// persisted until Flush.
	Set(ctx context.Context, key string, req models.SetPreferenceRequest) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	// Flush makes every change so far durable.
	Flush(ctx context.Context) error
	// Encrypt returns the ciphertext byte token of a value without storing
	// it.
	Encrypt(ctx context.Context, req models.EncryptRequest) (string, error)
}

// KeyService administers the key registry and keeps it persisted.
type KeyService interface {
	List(ctx context.Context) (models.KeysInfo, error)
	// Add generates a random credential, or derives one when
	// req.Passphrase is set.
	Add(ctx context.Context, req models.AddKeyRequest) (models.AddKeyResponse, error)
	Remove(ctx context.Context, index int) error
	Clear(ctx context.Context) error
	SetDelimiter(ctx context.Context, delimiter string) error
	// Backup writes the backup file of every credential to w.
	Backup(ctx context.Context, w io.Writer) error
	// Restore replaces every credential with the ones in the backup r and
	// returns how many were loaded.
	Restore(ctx context.Context, r io.Reader) (int, error)
}

// TokenService issues and verifies the admin tokens protecting the key
// management API.
type TokenService interface {
	CreateToken(ctx context.Context) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
