package http

import (
	"time"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/service"
)

const defaultRequestTimeout = 30 * time.Second

type Handler struct {
	services *service.Services

	metrics *httpMetrics
	limiter *ipRateLimiter

	trustProxyHeaders bool

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		metrics:           newHTTPMetrics(),
		limiter:           newIPRateLimiter(cfg.RateLimit, cfg.RateBurst),
		trustProxyHeaders: cfg.TrustProxyHeaders,
		requestTimeout:    timeout,
		logger:            logger,
	}
}
