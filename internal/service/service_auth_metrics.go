package service

import (
	"context"

	"github.com/MKhiriev/agil-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	operationRegister        = "register"
	operationAuthenticate    = "authenticate"
	operationValidateSession = "validate_session"

	outcomeOK = "OK"
)

// AuthMetricsService counts auth operations by outcome. The outcome label
// holds the error kind, or "OK".
type AuthMetricsService struct {
	inner AuthService

	operations *prometheus.CounterVec
}

// NewAuthMetricsService registers the auth counters with reg. A nil reg
// leaves the collectors unregistered.
func NewAuthMetricsService(reg prometheus.Registerer) AuthServiceWrapper {
	return &AuthMetricsService{
		operations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "agil_auth_operations_total",
				Help: "Total number of auth operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
	}
}

func (m *AuthMetricsService) RegisterUser(ctx context.Context, request models.RegisterRequest) (string, error) {
	id, err := m.inner.RegisterUser(ctx, request)
	m.observe(operationRegister, err)
	return id, err
}

func (m *AuthMetricsService) Authenticate(ctx context.Context, email, password string) (models.Session, models.UserProjection, error) {
	session, user, err := m.inner.Authenticate(ctx, email, password)
	m.observe(operationAuthenticate, err)
	return session, user, err
}

func (m *AuthMetricsService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	session, err := m.inner.ValidateSession(ctx, token)
	m.observe(operationValidateSession, err)
	return session, err
}

func (m *AuthMetricsService) Wrap(inner AuthService) AuthService {
	m.inner = inner
	return m
}

func (m *AuthMetricsService) observe(operation string, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = Kind(err)
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}
