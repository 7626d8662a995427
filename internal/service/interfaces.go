package service

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

// AuthService covers the public account operations and the session resolver.
type AuthService interface {
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthPayload, error)

	// Resolve turns a raw Authorization header into an AuthContext. It never
	// fails: anything short of a valid token for an existing user yields an
	// anonymous context.
	Resolve(ctx context.Context, authorizationHeader string) models.AuthContext
}

// EmployeeService covers the protected employee operations. Every method
// expects the request's AuthContext in ctx.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (models.Employee, error)
	SearchEmployees(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error)
	AddEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error)

	// DeleteEmployee returns a confirmation message naming the deleted
	// employee.
	DeleteEmployee(ctx context.Context, employeeID string) (string, error)
}

// UploadService stores standalone images on the asset host.
type UploadService interface {
	UploadImage(ctx context.Context, payload models.ImagePayload) (models.Asset, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.InfoResponse
}

// EmployeeServiceWrapper defines middleware composition for EmployeeService.
// Implementations wrap an existing EmployeeService to add behavior such as
// authorization or validation.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService // returns a decorated EmployeeService applying additional behavior
}
