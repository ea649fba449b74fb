package service

import (
	"context"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
	HealthStatusDown     = "down"

	componentUp   = "up"
	componentDown = "down"
)

type healthService struct {
	pinger Pinger
	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, logger: logger}
}

// Check pings the store and the cache. A lost cache degrades the service,
// a lost store takes it down.
func (h *healthService) Check(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{Status: HealthStatusOK, Store: componentUp, Cache: componentUp}

	if err := h.pinger.PingCache(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("cache ping failed")
		status.Cache = componentDown
		status.Status = HealthStatusDegraded
	}
	if err := h.pinger.PingStore(ctx); err != nil {
		h.logger.Err(err).Msg("store ping failed")
		status.Store = componentDown
		status.Status = HealthStatusDown
	}

	return status
}
