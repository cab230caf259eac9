package handler

import (
	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/handler/grpc"
	"github.com/MKhiriev/agil-auth/internal/handler/http"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// HealthProbe is the store health source shared by both transports.
type HealthProbe interface {
	http.HealthStatus
	grpc.HealthSource
}

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, probe HealthProbe, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, probe, cfg, registry, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(probe, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
