package http

import (
	"net/http"

	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, buildInfo.String(), http.StatusOK)
}
