// Package grpc exposes the standard gRPC health checking protocol backed by
// the application health check.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the Q&A API reports its status. The
// empty service name reports the status of the whole server.
const ServiceName = "askbox.v1.AskBox"

// Handler is the root gRPC transport handler.
//
// It owns a health server whose status follows [service.HealthService]. A
// degraded cache keeps the server SERVING, an unreachable store turns it
// NOT_SERVING.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The status is NOT_SERVING until the
// first Refresh.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh runs the health check and publishes the resulting status.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := h.services.HealthService.Check(ctx)

	serving := healthpb.HealthCheckResponse_SERVING
	if status.Status == service.HealthStatusDown {
		serving = healthpb.HealthCheckResponse_NOT_SERVING
		h.logger.Warn().Str("store", status.Store).Str("cache", status.Cache).Msg("health check failed")
	}

	h.setStatus(serving)
	return serving
}

// Watch refreshes the status every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	h.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
