package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/agil-auth/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), Kind: errorKind(resp)}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.sentinel = ErrUnauthorized
	case http.StatusNotFound:
		apiErr.sentinel = ErrNotFound
	case http.StatusServiceUnavailable:
		apiErr.sentinel = ErrServiceUnavailable
	case http.StatusInternalServerError:
		apiErr.sentinel = ErrInternalServerError
	}

	return apiErr
}

// errorKind reads the {"error": kind} body, falling back to the raw body and
// then to the status text.
func errorKind(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
