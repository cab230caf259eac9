package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
)

// kindNotFound is reported for unknown routes.
const kindNotFound = "NotFound"

var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrDuplicateEmail, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrExpiredToken, http.StatusUnauthorized},
	{service.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// kindFromError extends service.Kind with the transport-level errors.
func kindFromError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return service.KindInvalidInput
	case errors.Is(err, ErrEmptyAuthorizationHeader), errors.Is(err, ErrInvalidAuthorizationHeader):
		return service.KindInvalidToken
	default:
		return service.Kind(err)
	}
}

// writeError logs err and writes the mapped status with {"error": kind}.
// The body never carries err's text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	kind := kindFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", kind).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", kind).Msg("request rejected")
	}

	writeErrorKind(w, status, kind)
}

func writeErrorKind(w http.ResponseWriter, status int, kind string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: kind}, status)
}
