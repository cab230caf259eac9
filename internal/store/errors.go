package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same normalized email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrStoreUnavailable is returned (wrapped) when the backing store cannot
	// be reached or the failure is transient, so the caller may retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme does
	// not select any known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
