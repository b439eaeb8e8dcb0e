package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces admin JWT authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.TokenService.ParseToken] and stores the parsed token in
// the request context under [utils.TokenCtxKey].
//
// Requests are rejected with 401 when the header is missing or malformed
// or the token is invalid, and with 403 when the server has no token sign
// key configured.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeServiceError(w, r, "Handler.auth", err)
			return
		}

		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
