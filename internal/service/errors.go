package service

import "errors"

var (
	// ErrPreferenceNotFound is returned for a key that is not in the store.
	ErrPreferenceNotFound = errors.New("preference not found")
	// ErrUnknownValueType is returned for a type name outside
	// models.ValueTypes.
	ErrUnknownValueType = errors.New("unknown value type")
	// ErrInvalidValue is returned when the supplied text doesn't parse as
	// the requested type.
	ErrInvalidValue = errors.New("invalid value for type")
	// ErrUndecodableValue is returned when a stored value can't be read back
	// as the requested type, or can't be decrypted with the requested key.
	ErrUndecodableValue = errors.New("stored value can't be decoded")
	// ErrEmptyKey is returned for an empty preference key.
	ErrEmptyKey = errors.New("preference key is empty")

	// ErrKeyNotFound is returned for a registry index that doesn't exist.
	ErrKeyNotFound = errors.New("encryption key not found")
	// ErrInvalidKeyRequest is returned for a malformed key management
	// request: a bad salt, passphrase or delimiter.
	ErrInvalidKeyRequest = errors.New("invalid key request")
	// ErrInvalidBackup is returned when a backup can't be restored or an
	// empty registry can't be backed up.
	ErrInvalidBackup = errors.New("invalid backup")
	// ErrPersistingKeys is returned when the registry changed in memory but
	// couldn't be written to the key repository.
	ErrPersistingKeys = errors.New("failed to persist keys")

	// ErrTokenCreationFailed is returned when an admin token can't be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")
	// ErrTokenIsExpiredOrInvalid is returned for any token that fails
	// validation.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	// ErrTokenNotAdmin is returned for a valid token whose subject is not
	// the admin.
	ErrTokenNotAdmin = errors.New("token does not grant admin access")
	// ErrTokensDisabled is returned when no token sign key is configured.
	ErrTokensDisabled = errors.New("admin tokens are disabled: no sign key configured")
)
