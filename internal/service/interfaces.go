package service

import (
	"context"

	"github.com/MKhiriev/agil-auth/models"
)

// AuthService registers accounts, authenticates credentials and validates
// the session tokens it issues.
type AuthService interface {
	// RegisterUser creates an account and returns its id.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (string, error)

	// Authenticate checks email and password and mints a session for the
	// matching user. Unknown email and wrong password fail identically.
	Authenticate(ctx context.Context, email, password string) (models.Session, models.UserProjection, error)

	// ValidateSession verifies a token previously returned by Authenticate.
	ValidateSession(ctx context.Context, token string) (models.Session, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
