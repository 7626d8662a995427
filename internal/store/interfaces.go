package store

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists principals in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row. A collision on
	// username or email yields ErrUsernameAlreadyExists or
	// ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user whose username equals identifier or
	// whose email equals the lower-cased identifier, in a single lookup.
	FindUserByLogin(ctx context.Context, identifier string) (models.User, error)

	// FindUserByUsernameOrEmail returns any user holding username or email
	// in either column, so that no login identifier can match two users.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// EmployeeRepository persists employee records in the "employees" table.
// Lists are ordered by creation time, newest first.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	FindEmployeeByID(ctx context.Context, employeeID string) (models.Employee, error)
	FindEmployeeByEmail(ctx context.Context, email string) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	SearchEmployees(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error)

	// UpdateEmployee writes the non-nil fields of changes and returns the
	// updated row, or ErrEmployeeNotFound.
	UpdateEmployee(ctx context.Context, employeeID string, changes models.EmployeeChanges) (models.Employee, error)

	// DeleteEmployee removes the employee and returns the deleted row, or
	// ErrEmployeeNotFound.
	DeleteEmployee(ctx context.Context, employeeID string) (models.Employee, error)
}
