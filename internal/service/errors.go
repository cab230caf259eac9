package service

import "errors"

// Outcome sentinels of the auth service. Transports map them to status codes
// via Kind.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrExpiredToken       = errors.New("session token is expired")
	ErrStoreUnavailable   = errors.New("credential store is unavailable")

	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrPasswordHashing       = errors.New("password hashing failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Error kinds reported to clients in the "error" field of a response body.
const (
	KindInvalidInput       = "InvalidInput"
	KindDuplicateEmail     = "DuplicateEmail"
	KindInvalidCredentials = "InvalidCredentials"
	KindInvalidToken       = "InvalidToken"
	KindExpiredToken       = "ExpiredToken"
	KindStoreUnavailable   = "StoreUnavailable"
	KindInternal           = "Internal"
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidInput, KindInvalidInput},
	{ErrDuplicateEmail, KindDuplicateEmail},
	{ErrInvalidCredentials, KindInvalidCredentials},
	{ErrInvalidToken, KindInvalidToken},
	{ErrExpiredToken, KindExpiredToken},
	{ErrStoreUnavailable, KindStoreUnavailable},
}

// Kind returns the client-facing error kind of err. Errors outside the
// service sentinels are reported as KindInternal; nil yields "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
