package models

import "time"

// PreferenceEntry is one row of a store listing.
type PreferenceEntry struct {
	// Key is the store key.
	Key string `json:"key"`

	// Kind is the native slot the value lives in.
	Kind SlotKind `json:"kind"`

	// Raw is the stored value as text, without any decoding or
	// decryption applied.
	Raw string `json:"raw"`

	// UpdatedAt is the time of the last write, zero if the backend doesn't
	// track it.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TypedValue is a decoded preference in its plain text form: scalars as
// codec tokens, sequences joined with the registry delimiter.
type TypedValue struct {
	Key   string    `json:"key"`
	Type  ValueType `json:"type"`
	Value string    `json:"value"`
}

// GetPreferenceRequest selects how a stored preference is read back.
type GetPreferenceRequest struct {
	Key       string    `json:"key"`
	Type      ValueType `json:"type"`
	Encrypted bool      `json:"encrypted,omitempty"`
	KeyIndex  int       `json:"key_index,omitempty"`
}

// SetPreferenceRequest is the body of PUT /api/prefs/{key}.
type SetPreferenceRequest struct {
	// Type names the value type Value is parsed as.
	Type ValueType `json:"type"`

	// Value is the plain text of the value.
	Value string `json:"value"`

	// Encrypt stores the value as a ciphertext token.
	Encrypt bool `json:"encrypt,omitempty"`

	// KeyIndex selects the credential used when Encrypt is set.
	KeyIndex int `json:"key_index,omitempty"`
}

// EncryptRequest is the body of POST /api/prefs/encrypt.
type EncryptRequest struct {
	Type     ValueType `json:"type"`
	Value    string    `json:"value"`
	KeyIndex int       `json:"key_index,omitempty"`
}

// EncryptResponse carries a ciphertext byte token.
type EncryptResponse struct {
	Token string `json:"token"`
}

// KeysInfo describes the key registry without exposing key material.
type KeysInfo struct {
	Count     int       `json:"count"`
	Delimiter string    `json:"delimiter"`
	Keys      []KeyInfo `json:"keys"`
}

// AddKeyRequest is the body of POST /api/keys. An empty Passphrase
// generates a random credential; otherwise the credential is derived from
// Passphrase and Salt (standard base64). An empty Salt with a passphrase
// makes the server pick one.
type AddKeyRequest struct {
	Passphrase string `json:"passphrase,omitempty"`
	Salt       string `json:"salt,omitempty"`
}

// AddKeyResponse describes the credential that was added. Salt is set only
// for derived credentials.
type AddKeyResponse struct {
	Key  KeyInfo `json:"key"`
	Salt string  `json:"salt,omitempty"`
}

// DelimiterRequest is the body of PUT /api/keys/delimiter.
type DelimiterRequest struct {
	Delimiter string `json:"delimiter"`
}

// RestoreResponse reports how many credentials a restore loaded.
type RestoreResponse struct {
	Restored int `json:"restored"`
}

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}
