// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets prefsctl drive a remote prefsd over its REST API.
//
// [NewHTTPAdapters] returns implementations of [service.PreferenceService]
// and [service.KeyService], so commands work the same against a local store
// or a server. Failed requests are mapped from HTTP status codes to the
// sentinel errors in errors.go by mapHTTPError, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import "context"

// VersionAdapter reports the build of the remote server.
type VersionAdapter interface {
	// ServerVersion returns the plain text build description served at
	// GET /api/version.
	ServerVersion(ctx context.Context) (string, error)
}
