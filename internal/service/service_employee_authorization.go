package service

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

// EmployeeAuthorizationService runs the authorization gate in front of every
// method of the wrapped EmployeeService.
type EmployeeAuthorizationService struct {
	inner EmployeeService
}

func NewEmployeeAuthorizationService() EmployeeServiceWrapper {
	return &EmployeeAuthorizationService{}
}

func (a *EmployeeAuthorizationService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	return a.inner.ListEmployees(ctx)
}

func (a *EmployeeAuthorizationService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return models.Employee{}, err
	}
	return a.inner.GetEmployee(ctx, employeeID)
}

func (a *EmployeeAuthorizationService) SearchEmployees(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	return a.inner.SearchEmployees(ctx, filter)
}

func (a *EmployeeAuthorizationService) AddEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return models.Employee{}, err
	}
	return a.inner.AddEmployee(ctx, input)
}

func (a *EmployeeAuthorizationService) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return models.Employee{}, err
	}
	return a.inner.UpdateEmployee(ctx, employeeID, update)
}

func (a *EmployeeAuthorizationService) DeleteEmployee(ctx context.Context, employeeID string) (string, error) {
	if _, err := RequirePrincipal(ctx); err != nil {
		return "", err
	}
	return a.inner.DeleteEmployee(ctx, employeeID)
}

func (a *EmployeeAuthorizationService) Wrap(wrapped EmployeeService) EmployeeService {
	a.inner = wrapped
	return a
}
