package grpc

import (
	"github.com/MKhiriev/agil-auth/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-check service name reported next to the
// overall ("") status.
const ServiceName = "agil.auth.v1.Auth"

// HealthSource notifies subscribers whenever store reachability changes.
type HealthSource interface {
	Subscribe(fn func(serving bool))
}

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service whose status follows
// the store health probe. A handler instance is created once at startup and
// shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] that starts NOT_SERVING and then tracks
// source.
func NewHandler(source HealthSource, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setServing(false)

	if source != nil {
		source.Subscribe(h.setServing)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING and ignores further updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status updated")
}
