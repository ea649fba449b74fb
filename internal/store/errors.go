package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAdminNotFound is returned when no admin matches the lookup.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrQuestionNotFound is returned when no question matches the lookup.
	ErrQuestionNotFound = errors.New("question was not found")

	// ErrUsernameAlreadyExists is returned when an insert or update violates
	// the username uniqueness constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an insert or update violates
	// the e-mail uniqueness constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrReferenceNotFound is returned when a question references a user
	// that does not exist (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced record was not found")

	// ErrNothingToUpdate is returned when a partial update carries no field.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrCacheMiss is returned by [QuestionCache] when no entry is stored.
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnsupportedDSN is returned when the store DSN scheme matches no
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported store dsn")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a driver-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
