package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoToken             = errors.New("no session token set")
	ErrEmptyAddress        = errors.New("empty address")
)

// APIError carries the error kind reported by the server next to the
// transport-level sentinel selected from the status code.
type APIError struct {
	StatusCode int
	Kind       string

	sentinel error
}

func (e *APIError) Error() string {
	if e.sentinel == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.sentinel, e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
