package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, traceIDHeader string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceIDHeader != "" {
		req.Header.Set("X-Trace-ID", traceIDHeader)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request generates UUID"},
		{name: "UUID as incoming trace ID", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
		{name: "overlong trace ID is replaced", requestTraceID: strings.Repeat("a", maxTraceIDLen+1)},
		{name: "trace ID with spaces is replaced", requestTraceID: "has space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, captured := executeWithTraceID(newTestHandler(), tt.requestTraceID)

			require.NotNil(t, captured, "next handler must be called")
			assert.Equal(t, http.StatusOK, rr.Code)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "expected generated UUID, got %q", got)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := logger.NewLogger("test")
	base.Logger = base.Output(&buf)
	h := &Handler{logger: base}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, validTraceID("abc-123"))
	assert.False(t, validTraceID(""))
	assert.False(t, validTraceID("tab\there"))
	assert.False(t, validTraceID("ünïcode"))
}
