package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject is the "sub" claim of tokens that may manage keys.
const AdminSubject = "admin"

// Token wraps an admin JWT.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// IsAdmin reports whether the token was issued for key administration.
func (t *Token) IsAdmin() bool {
	return t.Subject == AdminSubject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
