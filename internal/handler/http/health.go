package http

import (
	"net/http"

	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
)

const statusOK = "ok"

// root answers GET / so that load balancers and humans can see the process
// is up, regardless of store health.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: statusOK, Message: "Server is running"}, http.StatusOK)
}

// healthCheck reports the last store probe result.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	if h.health != nil && !h.health.Serving() {
		writeErrorKind(w, http.StatusServiceUnavailable, service.KindStoreUnavailable)
		return
	}
	utils.WriteJSON(w, models.StatusResponse{Status: statusOK}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorKind(w, http.StatusNotFound, kindNotFound)
}
