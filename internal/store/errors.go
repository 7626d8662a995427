package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup matches no user.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUsernameAlreadyExists is returned when a user insert collides with
	// the UNIQUE constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a user insert collides with the
	// UNIQUE constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrEmployeeNotFound is returned when a query, update or delete targets
	// an employee identifier that does not exist.
	ErrEmployeeNotFound = errors.New("employee was not found")

	// ErrEmployeeEmailAlreadyExists is returned when an employee insert or
	// update collides with the UNIQUE constraint on employees.email.
	ErrEmployeeEmailAlreadyExists = errors.New("employee email already exists")

	// ErrConstraintViolation is returned when a CHECK or NOT NULL constraint
	// rejects a write.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDriver is returned by NewConnectDB for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
