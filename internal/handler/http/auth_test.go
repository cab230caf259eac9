// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRegisterBody = `{"username":"tester","email":"Test@Ex.com","password":"pw123","phone":"1","fullName":"Test User"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var received models.RegisterRequest
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(ctx context.Context, request models.RegisterRequest) (string, error) {
			received = request
			return "user-1", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(validRegisterBody))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"userId":"user-1"}`, rec.Body.String())
	assert.Equal(t, "Test@Ex.com", received.Email)
	assert.Equal(t, "Test User", received.FullName)
}

func TestRegister_LegacyFullNameKey(t *testing.T) {
	var received models.RegisterRequest
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(ctx context.Context, request models.RegisterRequest) (string, error) {
			received = request
			return "user-1", nil
		},
	})

	body := `{"username":"u","email":"a@b.c","password":"p","phone":"1","full_name":"Legacy Name"}`
	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Legacy Name", received.FullName)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: email", service.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantKind: "InvalidInput"},
		{name: "duplicate email", err: service.ErrDuplicateEmail, wantStatus: http.StatusBadRequest, wantKind: "DuplicateEmail"},
		{name: "store unavailable", err: service.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable, wantKind: "StoreUnavailable"},
		{name: "unexpected", err: service.ErrPasswordHashing, wantStatus: http.StatusInternalServerError, wantKind: "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				registerUserFn: func(ctx context.Context, request models.RegisterRequest) (string, error) {
					return "", tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(validRegisterBody)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantKind, decodeErrorKind(t, rec))
		})
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidInput", decodeErrorKind(t, rec))
}

func TestRegister_BodyTooLarge(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	body := `{"username":"` + strings.Repeat("x", maxBodyBytes+1) + `"}`
	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		authenticateFn: func(ctx context.Context, email, password string) (models.Session, models.UserProjection, error) {
			assert.Equal(t, "test@ex.com", email)
			assert.Equal(t, "pw123", password)
			return models.Session{Token: "signed.token.value", SubjectID: "u1"},
				models.UserProjection{ID: "u1", Email: "test@ex.com"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"test@ex.com","password":"pw123"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"token":"signed.token.value","user":{"id":"u1","email":"test@ex.com","fullName":"","phone":""}}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLogin_InvalidCredentialsBodyIsUniform(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		authenticateFn: func(ctx context.Context, email, password string) (models.Session, models.UserProjection, error) {
			return models.Session{}, models.UserProjection{}, service.ErrInvalidCredentials
		},
	})

	bodies := make([]string, 0, 2)
	for _, payload := range []string{
		`{"email":"test@ex.com","password":"wrong"}`,
		`{"email":"nouser@ex.com","password":"pw123"}`,
	} {
		rec := httptest.NewRecorder()
		h.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(payload)))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.JSONEq(t, `{"error":"InvalidCredentials"}`, bodies[0])
	assert.Equal(t, bodies[0], bodies[1])
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "invalid input", err: service.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantKind: "InvalidInput"},
		{name: "store unavailable", err: service.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable, wantKind: "StoreUnavailable"},
		{name: "token creation", err: service.ErrTokenCreationFailed, wantStatus: http.StatusInternalServerError, wantKind: "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				authenticateFn: func(ctx context.Context, email, password string) (models.Session, models.UserProjection, error) {
					return models.Session{}, models.UserProjection{}, tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a","password":"b"}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantKind, decodeErrorKind(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// session
// ─────────────────────────────────────────────

func TestSession_EchoesClaims(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	session := models.Session{
		SubjectID: "u1",
		IssuedAt:  issued,
		ExpiresAt: issued.Add(24 * time.Hour),
		Token:     "secret-token",
	}

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.SessionCtxKey, session))
	rec := httptest.NewRecorder()

	h.session(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "u1", got["subjectId"])
	assert.Equal(t, "2026-03-01T12:00:00Z", got["issuedAt"])
	assert.Equal(t, "2026-03-02T12:00:00Z", got["expiresAt"])
	assert.NotContains(t, rec.Body.String(), "secret-token")
}

func TestSession_NoSessionInContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := httptest.NewRecorder()
	h.session(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "InvalidToken", decodeErrorKind(t, rec))
}
