package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/models"
)

// Well-known test account registered by SeedTestUser.
const (
	TestUserEmail    = "test@example.com"
	TestUserPassword = "password123"
	TestUserFullName = "Test User"
	TestUserPhone    = "1234567890"
	TestUserUsername = "testuser"
)

// SeedTestUser registers the well-known test account through auth, so the
// password is hashed like any other. An already registered account is not
// an error.
func SeedTestUser(ctx context.Context, auth AuthService) error {
	log := logger.FromContext(ctx)

	id, err := auth.RegisterUser(ctx, models.RegisterRequest{
		Username: TestUserUsername,
		Email:    TestUserEmail,
		Password: TestUserPassword,
		Phone:    TestUserPhone,
		FullName: TestUserFullName,
	})
	if errors.Is(err, ErrDuplicateEmail) {
		log.Info().Str("email", TestUserEmail).Msg("test user already exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error seeding test user: %w", err)
	}

	log.Info().Str("user_id", id).Str("email", TestUserEmail).Msg("test user created")
	return nil
}
