package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup key.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when a directory entry does not exist.
	ErrProfileNotFound = errors.New("profile was not found")
)

// Low-level database operation errors.
var (
	// ErrUnsupportedDSN is returned when the DSN scheme selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
