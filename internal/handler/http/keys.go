package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// backupFileName is suggested to clients downloading a backup.
const backupFileName = "keys-backup.csv"

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.KeyService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "Handler.listKeys", err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// addKey generates a credential, or derives one when the body carries a
// passphrase. An empty body generates.
func (h *Handler) addKey(w http.ResponseWriter, r *http.Request) {
	var req models.AddKeyRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.writeServiceError(w, r, "Handler.addKey", err)
		return
	}

	resp, err := h.services.KeyService.Add(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "Handler.addKey", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) removeKey(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		h.writeServiceError(w, r, "Handler.removeKey", fmt.Errorf("%w: index=%q", ErrInvalidParameter, raw))
		return
	}

	if err = h.services.KeyService.Remove(r.Context(), index); err != nil {
		h.writeServiceError(w, r, "Handler.removeKey", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearKeys(w http.ResponseWriter, r *http.Request) {
	if err := h.services.KeyService.Clear(r.Context()); err != nil {
		h.writeServiceError(w, r, "Handler.clearKeys", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setDelimiter(w http.ResponseWriter, r *http.Request) {
	var req models.DelimiterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeServiceError(w, r, "Handler.setDelimiter", err)
		return
	}

	if err := h.services.KeyService.SetDelimiter(r.Context(), req.Delimiter); err != nil {
		h.writeServiceError(w, r, "Handler.setDelimiter", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// backupKeys streams the backup file. It is buffered first so a failure
// still produces a proper error response.
func (h *Handler) backupKeys(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.services.KeyService.Backup(r.Context(), &buf); err != nil {
		h.writeServiceError(w, r, "Handler.backupKeys", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+backupFileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// restoreKeys takes the backup file as the raw request body.
func (h *Handler) restoreKeys(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)

	restored, err := h.services.KeyService.Restore(r.Context(), body)
	if err != nil {
		h.writeServiceError(w, r, "Handler.restoreKeys", err)
		return
	}

	utils.WriteJSON(w, models.RestoreResponse{Restored: restored}, http.StatusOK)
}
