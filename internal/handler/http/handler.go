package http

import (
	"strings"
	"time"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// HealthStatus reports whether the credential store is currently reachable.
type HealthStatus interface {
	Serving() bool
}

type Handler struct {
	services *service.Services
	health   HealthStatus

	basePath       string
	corsOrigins    []string
	requestTimeout time.Duration

	// registry receives the HTTP collectors and backs GET /metrics.
	// Nil disables both.
	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, health HealthStatus, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services:       services,
		health:         health,
		basePath:       strings.TrimRight(cfg.BasePath, "/"),
		corsOrigins:    cfg.CORSOrigins,
		requestTimeout: cfg.RequestTimeout,
		registry:       registry,
		logger:         logger,
	}
	if registry != nil {
		h.metrics = newHTTPMetrics(registry)
	}
	return h
}
