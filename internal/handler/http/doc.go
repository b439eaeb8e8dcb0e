// Package http implements the REST API of prefsd.
//
// Routes:
//
//	GET    /api/version
//	GET    /api/prefs                  list entries
//	DELETE /api/prefs                  delete every entry
//	GET    /api/prefs/{key}            ?type=&encrypted=&key_index=
//	PUT    /api/prefs/{key}            models.SetPreferenceRequest
//	DELETE /api/prefs/{key}
//	POST   /api/prefs/flush
//	POST   /api/prefs/encrypt          models.EncryptRequest
//
// Key administration needs "Authorization: Bearer <admin token>":
//
//	GET    /api/keys                   count, delimiter and fingerprints
//	POST   /api/keys                   models.AddKeyRequest
//	DELETE /api/keys
//	DELETE /api/keys/{index}
//	PUT    /api/keys/delimiter         models.DelimiterRequest
//	GET    /api/keys/backup            backup file body
//	POST   /api/keys/restore           backup file body
//
// Failures are answered with a JSON models.ErrorResponse; the status comes
// from errorStatusMap.
package http
