package store

import (
	"context"

	"github.com/MKhiriev/agil-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: a collection of user accounts
// keyed by normalized email.
//
// Implementations must be safe for concurrent use and must enforce email
// uniqueness atomically, so that of two concurrent inserts with the same
// email exactly one succeeds.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned UserID
	// and CreatedAt. Returns ErrEmailAlreadyExists when the normalized email
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose normalized email equals the
	// normalized argument, or (nil, nil) when there is none.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// IDGenerator produces identifiers for new users.
type IDGenerator interface {
	Generate() string
}
