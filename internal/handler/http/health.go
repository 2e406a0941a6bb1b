package http

import (
	"net/http"

	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/models"
)

// healthz reports 200 when the database answers a ping and 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
