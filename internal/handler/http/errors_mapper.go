package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidParameter: http.StatusBadRequest,

	service.ErrEmptyKey:          http.StatusBadRequest,
	service.ErrUnknownValueType:  http.StatusBadRequest,
	service.ErrInvalidValue:      http.StatusBadRequest,
	service.ErrInvalidKeyRequest: http.StatusBadRequest,
	service.ErrInvalidBackup:     http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenNotAdmin:           http.StatusForbidden,
	service.ErrTokensDisabled:          http.StatusForbidden,

	service.ErrPreferenceNotFound: http.StatusNotFound,
	service.ErrKeyNotFound:        http.StatusNotFound,

	service.ErrUndecodableValue: http.StatusUnprocessableEntity,

	service.ErrPersistingKeys:      http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Internal
// failures are reported without their details.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
