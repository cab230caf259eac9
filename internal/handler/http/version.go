package http

import (
	"net/http"

	"github.com/MKhiriev/agil-auth/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, version, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("error writing version response")
	}
}
