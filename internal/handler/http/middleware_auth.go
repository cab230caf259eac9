package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/agil-auth/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ValidateSession] and, on success, stores the
// decoded session in the request context under [utils.SessionCtxKey].
//
// Requests are rejected with 401 and {"error":"InvalidToken"} when the
// header is missing or malformed or the token does not verify, and with
// {"error":"ExpiredToken"} once the token has expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ValidateSession(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
