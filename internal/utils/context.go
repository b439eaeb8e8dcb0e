// Package utils provides general-purpose helper utilities
// used across different parts of the application: typed context keys,
// key fingerprints, HTTP response writing, the HTTP client wrapper,
// JWT token generation and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key an authenticated admin token is stored under.
var TokenCtxKey = contextKey("token")

// TraceIDCtxKey is the key the request trace id is stored under.
var TraceIDCtxKey = contextKey("traceID")

// GetTokenFromContext retrieves the admin token put into the context by the
// auth middleware.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

// GetTraceIDFromContext retrieves the request trace id.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
