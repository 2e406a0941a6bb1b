package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrBlogNotFound is returned when a query or mutation targets a blog
	// that does not exist.
	ErrBlogNotFound = errors.New("blog not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
