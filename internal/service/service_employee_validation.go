package service

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// EmployeeValidationService applies the field rules before delegating to
// the wrapped EmployeeService. The first failing rule is returned as
// BAD_USER_INPUT and the inner service is not called.
type EmployeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService() EmployeeServiceWrapper {
	return &EmployeeValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *EmployeeValidationService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return v.inner.ListEmployees(ctx)
}

func (v *EmployeeValidationService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	if err := v.validate(ctx, employeeID); err != nil {
		return models.Employee{}, err
	}
	return v.inner.GetEmployee(ctx, employeeID)
}

func (v *EmployeeValidationService) SearchEmployees(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	if err := v.validate(ctx, filter); err != nil {
		return nil, err
	}
	return v.inner.SearchEmployees(ctx, filter)
}

func (v *EmployeeValidationService) AddEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	if err := v.validate(ctx, input); err != nil {
		return models.Employee{}, err
	}
	return v.inner.AddEmployee(ctx, input)
}

func (v *EmployeeValidationService) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error) {
	if err := v.validate(ctx, employeeID); err != nil {
		return models.Employee{}, err
	}
	if err := v.validate(ctx, update); err != nil {
		return models.Employee{}, err
	}
	return v.inner.UpdateEmployee(ctx, employeeID, update)
}

func (v *EmployeeValidationService) DeleteEmployee(ctx context.Context, employeeID string) (string, error) {
	if err := v.validate(ctx, employeeID); err != nil {
		return "", err
	}
	return v.inner.DeleteEmployee(ctx, employeeID)
}

func (v *EmployeeValidationService) Wrap(wrapped EmployeeService) EmployeeService {
	v.inner = wrapped
	return v
}

func (v *EmployeeValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return app.InvalidInput(err.Error(), err)
	}
	return nil
}
