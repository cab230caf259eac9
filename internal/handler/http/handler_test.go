package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/MKhiriev/agil-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; an unset field panics
// so that unexpected calls fail loudly.
type mockAuthService struct {
	registerUserFn    func(ctx context.Context, request models.RegisterRequest) (string, error)
	authenticateFn    func(ctx context.Context, email, password string) (models.Session, models.UserProjection, error)
	validateSessionFn func(ctx context.Context, token string) (models.Session, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (string, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.Session, models.UserProjection, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	return m.validateSessionFn(ctx, token)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

type stubHealth struct {
	serving bool
}

func (s stubHealth) Serving() bool {
	return s.serving
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "test"},
		AuthService:    auth,
	}
	return NewHandler(svcs, stubHealth{serving: true}, config.Server{}, nil, logger.Nop())
}

func decodeErrorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	health := stubHealth{serving: true}

	h := NewHandler(svc, health, config.Server{BasePath: "/api/", CORSOrigins: []string{"http://a"}}, nil, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, health, h.health)
	assert.Equal(t, "/api", h.basePath)
	assert.Equal(t, []string{"http://a"}, h.corsOrigins)
	assert.Nil(t, h.metrics)
}

func TestNewHandler_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	h := NewHandler(&service.Services{}, nil, config.Server{}, reg, logger.Nop())

	require.NotNil(t, h.metrics)
	assert.Same(t, reg, h.registry)
}
