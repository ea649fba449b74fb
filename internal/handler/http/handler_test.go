package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_Defaults(t *testing.T) {
	services := newTestServices()

	h := NewHandler(services, config.Server{}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, defaultRequestTimeout, h.requestTimeout)
	assert.Nil(t, h.limiter)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_FromConfig(t *testing.T) {
	h := NewHandler(newTestServices(), config.Server{
		RequestTimeout: 5 * time.Second,
		RateLimit:      2,
		RateBurst:      4,
	}, logger.Nop())

	assert.Equal(t, 5*time.Second, h.requestTimeout)
	require.NotNil(t, h.limiter)
	assert.Equal(t, 4, h.limiter.burst)
}

func TestNewHandler_IndependentMetrics(t *testing.T) {
	first := NewHandler(newTestServices(), config.Server{}, logger.Nop())
	second := NewHandler(newTestServices(), config.Server{}, logger.Nop())

	assert.NotSame(t, first.metrics.registry, second.metrics.registry)
}
