package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

func (h *Handler) listPreferences(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.PreferenceService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "Handler.listPreferences", err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// getPreference reads /api/prefs/{key}?type=&encrypted=&key_index=.
func (h *Handler) getPreference(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := models.GetPreferenceRequest{
		Key:  chi.URLParam(r, "key"),
		Type: models.ValueType(query.Get("type")),
	}

	var err error
	if v := query.Get("encrypted"); v != "" {
		if req.Encrypted, err = strconv.ParseBool(v); err != nil {
			h.writeServiceError(w, r, "Handler.getPreference", fmt.Errorf("%w: encrypted=%q", ErrInvalidParameter, v))
			return
		}
	}
	if v := query.Get("key_index"); v != "" {
		if req.KeyIndex, err = strconv.Atoi(v); err != nil {
			h.writeServiceError(w, r, "Handler.getPreference", fmt.Errorf("%w: key_index=%q", ErrInvalidParameter, v))
			return
		}
	}

	value, err := h.services.PreferenceService.Get(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "Handler.getPreference", err)
		return
	}

	utils.WriteJSON(w, value, http.StatusOK)
}

func (h *Handler) setPreference(w http.ResponseWriter, r *http.Request) {
	var req models.SetPreferenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeServiceError(w, r, "Handler.setPreference", err)
		return
	}

	if err := h.services.PreferenceService.Set(r.Context(), chi.URLParam(r, "key"), req); err != nil {
		h.writeServiceError(w, r, "Handler.setPreference", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deletePreference(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PreferenceService.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		h.writeServiceError(w, r, "Handler.deletePreference", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearPreferences(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PreferenceService.Clear(r.Context()); err != nil {
		h.writeServiceError(w, r, "Handler.clearPreferences", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) flushPreferences(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PreferenceService.Flush(r.Context()); err != nil {
		h.writeServiceError(w, r, "Handler.flushPreferences", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) encryptValue(w http.ResponseWriter, r *http.Request) {
	var req models.EncryptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeServiceError(w, r, "Handler.encryptValue", err)
		return
	}

	token, err := h.services.PreferenceService.Encrypt(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "Handler.encryptValue", err)
		return
	}

	utils.WriteJSON(w, models.EncryptResponse{Token: token}, http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
