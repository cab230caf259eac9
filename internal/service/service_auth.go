// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/crypto"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/store"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/internal/validators"
	"github.com/MKhiriev/agil-auth/models"
)

// authService is the concrete implementation of AuthService.
// It validates requests, hashes and verifies passwords with a
// PasswordHasher, persists users through a UserRepository, and mints
// stateless signed session tokens.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// hasher derives and verifies stored credentials.
	hasher crypto.PasswordHasher

	// validator checks request fields before any store access.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// storageTimeout bounds every individual store call.
	storageTimeout time.Duration

	// now is the clock used for minting and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// AuthOption customizes an authService at construction.
type AuthOption func(*authService)

// WithClock replaces the wall clock used to mint and check sessions.
func WithClock(now func() time.Time) AuthOption {
	return func(a *authService) {
		if now != nil {
			a.now = now
		}
	}
}

// WithValidator replaces the default request validator.
func WithValidator(v validators.Validator) AuthOption {
	return func(a *authService) {
		if v != nil {
			a.validator = v
		}
	}
}

// NewAuthService constructs an AuthService over the given store and hasher,
// taking token settings from app and the per-call store deadline from
// storage.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, app config.App, storage config.Storage, logger *logger.Logger, opts ...AuthOption) AuthService {
	a := &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewAccountValidator(),
		tokenSignKey:   app.TokenSignKey,
		tokenIssuer:    app.TokenIssuer,
		tokenDuration:  app.TokenDuration,
		storageTimeout: storage.Timeout,
		now:            time.Now,
		logger:         logger,
	}

	if a.tokenDuration <= 0 {
		a.tokenDuration = config.DefaultTokenDuration
	}
	if a.storageTimeout <= 0 {
		a.storageTimeout = config.DefaultStorageTimeout
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// RegisterUser creates a new user account.
//
// Returns the id of the persisted user or:
//   - ErrInvalidInput if any field is empty (email after trimming).
//   - ErrDuplicateEmail if the normalized email is already taken, including
//     when a concurrent registration wins the insert.
//   - ErrStoreUnavailable if the store cannot be reached in time.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid registration request")
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	email := store.NormalizeEmail(request.Email)

	existing, err := a.findUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("user lookup before registration failed")
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if existing != nil {
		log.Debug().Str("email", email).Msg("email is already registered")
		return "", ErrDuplicateEmail
	}

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	created, err := a.createUser(ctx, models.User{
		Email:        email,
		Username:     request.Username,
		PasswordHash: passwordHash,
		FullName:     request.FullName,
		Phone:        request.Phone,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", email).Msg("email was registered concurrently")
		return "", ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Info().Str("user_id", created.UserID).Msg("user registered")
	return created.UserID, nil
}

// Authenticate checks the credentials and issues a session.
//
// Returns the session and the sanitized user view or:
//   - ErrInvalidInput if email or password is empty.
//   - ErrInvalidCredentials if no user has that email or the password does
//     not match. Both causes take the same path through the hasher.
//   - ErrStoreUnavailable if the store cannot be reached in time.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.Session, models.UserProjection, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		log.Debug().Err(err).Msg("invalid login request")
		return models.Session{}, models.UserProjection{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	user, err := a.findUserByEmail(ctx, store.NormalizeEmail(email))
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.Session{}, models.UserProjection{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if user == nil {
		a.hasher.VerifyDummy(password)
		log.Debug().Msg("login rejected")
		return models.Session{}, models.UserProjection{}, ErrInvalidCredentials
	}

	// A corrupt stored credential cannot match any password. The caller sees
	// the usual rejection; operators see the error.
	matches, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.UserID).Msg("stored credential could not be verified")
		return models.Session{}, models.UserProjection{}, ErrInvalidCredentials
	}
	if !matches {
		log.Debug().Msg("login rejected")
		return models.Session{}, models.UserProjection{}, ErrInvalidCredentials
	}

	session, err := utils.GenerateSessionToken(a.tokenIssuer, user.UserID, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("session token creation failed")
		return models.Session{}, models.UserProjection{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("user_id", user.UserID).Time("expires_at", session.ExpiresAt).Msg("session issued")
	return session, user.Projection(), nil
}

// ValidateSession verifies the token signature, issuer and expiry.
//
// Returns the decoded session or ErrExpiredToken once the current time has
// reached its expiry, and ErrInvalidToken for every other failure.
func (a *authService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Session{}, ErrInvalidToken
	}

	session, err := utils.ParseSessionToken(token, a.tokenSignKey, a.tokenIssuer, a.now)
	if errors.Is(err, utils.ErrExpiredSessionToken) {
		log.Debug().Err(err).Msg("session token is expired")
		return models.Session{}, ErrExpiredToken
	}
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Session{}, ErrInvalidToken
	}

	return session, nil
}

func (a *authService) findUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, a.storageTimeout)
	defer cancel()

	return a.userRepository.FindUserByEmail(ctx, email)
}

func (a *authService) createUser(ctx context.Context, user models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, a.storageTimeout)
	defer cancel()

	return a.userRepository.CreateUser(ctx, user)
}
