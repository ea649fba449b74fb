package http

import (
	"net/http"

	"github.com/MKhiriev/go-ask-box/internal/service"
	"github.com/MKhiriev/go-ask-box/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetVersionInfo(r.Context()), http.StatusOK)
}

// getHealth answers 503 only when the store is unreachable. A lost cache
// is reported but keeps the service available.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if status.Status == service.HealthStatusDown {
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, status, code)
}
