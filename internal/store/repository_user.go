package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table
// on PostgreSQL and SQLite alike; dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with store-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - schema not yet migrated and server unreachable → wrapped [ErrStoreUnavailable].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - retryable driver error or deadline → wrapped [ErrStoreUnavailable].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.db.schema.ensure(ctx); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("store is not ready")
		return models.User{}, err
	}

	user.UserID = r.ids.Generate()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.wrapError(ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches the
// normalized argument. A missing row is not an error: (nil, nil) is returned.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.db.schema.ensure(ctx); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("store is not ready")
		return nil, err
	}

	query, args, err := buildFindUserByEmailQuery(r.db.builder(), NormalizeEmail(email))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to create query")
		return nil, err
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&foundUser.UserID,
		&foundUser.Email,
		&foundUser.Username,
		&foundUser.PasswordHash,
		&foundUser.FullName,
		&foundUser.Phone,
		&foundUser.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return nil, r.wrapError(ErrScanningRow, err)
	}

	return &foundUser, nil
}

func (r *userRepository) wrapError(kind, err error) error {
	if r.db.errorClassificator.Classify(err) == Retryable ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
