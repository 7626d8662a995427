// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/adapter"
	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// employeeService runs the business steps of the employee operations:
// uniqueness check, photo resolution, persistence and mapping of storage
// errors. Authorization and field validation are applied by the wrappers
// returned from NewEmployeeAuthorizationService and
// NewEmployeeValidationService.
type employeeService struct {
	employeeRepository store.EmployeeRepository
	assetHost          adapter.AssetHost

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewEmployeeService(employeeRepository store.EmployeeRepository, assetHost adapter.AssetHost, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		assetHost:          assetHost,
		ids:                utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

func (e *employeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := e.employeeRepository.ListEmployees(ctx)
	if err != nil {
		return nil, e.storageError(ctx, "*employeeService.ListEmployees", "", err)
	}
	return employees, nil
}

func (e *employeeService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	employee, err := e.employeeRepository.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return models.Employee{}, e.storageError(ctx, "*employeeService.GetEmployee", employeeID, err)
	}
	return employee, nil
}

func (e *employeeService) SearchEmployees(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	filter.Designation = strings.TrimSpace(filter.Designation)
	filter.Department = strings.TrimSpace(filter.Department)

	employees, err := e.employeeRepository.SearchEmployees(ctx, filter)
	if err != nil {
		return nil, e.storageError(ctx, "*employeeService.SearchEmployees", "", err)
	}
	return employees, nil
}

// AddEmployee checks the email for uniqueness, uploads an inline photo and
// inserts the record. An upload failure aborts before anything is written.
func (e *employeeService) AddEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := e.employeeRepository.FindEmployeeByEmail(ctx, email)
	switch {
	case err == nil:
		return models.Employee{}, app.InvalidInput(app.MsgEmployeeEmailAlreadyExists, store.ErrEmployeeEmailAlreadyExists)
	case !errors.Is(err, store.ErrEmployeeNotFound):
		return models.Employee{}, e.storageError(ctx, "*employeeService.AddEmployee", "", err)
	}

	dateOfJoining, err := validators.ParseDate(input.DateOfJoining)
	if err != nil {
		return models.Employee{}, app.InvalidInput(err.Error(), err)
	}

	photo, err := e.resolvePhoto(ctx, input.EmployeePhoto)
	if err != nil {
		return models.Employee{}, err
	}

	var gender *models.Gender
	if input.Gender != "" {
		g := models.Gender(input.Gender)
		gender = &g
	}

	now := e.now().UTC()
	created, err := e.employeeRepository.CreateEmployee(ctx, models.Employee{
		EmployeeID:    e.ids.Generate(),
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         email,
		Gender:        gender,
		Designation:   strings.TrimSpace(input.Designation),
		Salary:        input.Salary,
		DateOfJoining: dateOfJoining,
		Department:    strings.TrimSpace(input.Department),
		EmployeePhoto: photo,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return models.Employee{}, e.storageError(ctx, "*employeeService.AddEmployee", "", err)
	}

	return created, nil
}

// UpdateEmployee writes only the supplied fields plus updated_at. Storage
// constraints still apply to the merged row.
func (e *employeeService) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error) {
	changes := models.EmployeeChanges{
		FirstName:   trimmed(update.FirstName),
		LastName:    trimmed(update.LastName),
		Designation: trimmed(update.Designation),
		Department:  trimmed(update.Department),
		Salary:      update.Salary,
		UpdatedAt:   e.now().UTC(),
	}

	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		changes.Email = &email
	}
	if update.Gender != nil {
		g := models.Gender(*update.Gender)
		changes.Gender = &g
	}

	if update.EmployeePhoto != nil {
		photo, err := e.resolvePhoto(ctx, *update.EmployeePhoto)
		if err != nil {
			return models.Employee{}, err
		}
		changes.EmployeePhoto = photo
	}

	if update.DateOfJoining != nil {
		dateOfJoining, err := validators.ParseDate(*update.DateOfJoining)
		if err != nil {
			return models.Employee{}, app.InvalidInput(err.Error(), err)
		}
		changes.DateOfJoining = &dateOfJoining
	}

	updated, err := e.employeeRepository.UpdateEmployee(ctx, employeeID, changes)
	if err != nil {
		return models.Employee{}, e.storageError(ctx, "*employeeService.UpdateEmployee", employeeID, err)
	}

	return updated, nil
}

func (e *employeeService) DeleteEmployee(ctx context.Context, employeeID string) (string, error) {
	deleted, err := e.employeeRepository.DeleteEmployee(ctx, employeeID)
	if err != nil {
		return "", e.storageError(ctx, "*employeeService.DeleteEmployee", employeeID, err)
	}

	logger.FromContext(ctx).Info().Str("employee_id", deleted.EmployeeID).Msg("employee deleted")
	return fmt.Sprintf("Employee \"%s\" deleted successfully.", deleted.FullName()), nil
}

// resolvePhoto returns the value to persist for an employee_photo input:
// nil for an empty value, the hosted URL for an inline image and the value
// itself otherwise.
func (e *employeeService) resolvePhoto(ctx context.Context, photo string) (*string, error) {
	photo = strings.TrimSpace(photo)
	if photo == "" {
		return nil, nil
	}
	if !models.IsInlineImage(photo) {
		return &photo, nil
	}

	asset, err := uploadInlineImage(ctx, e.assetHost, photo)
	if err != nil {
		return nil, err
	}
	return &asset.URL, nil
}

// storageError maps repository errors onto the client contract.
func (e *employeeService) storageError(ctx context.Context, funcName, employeeID string, err error) error {
	switch {
	case errors.Is(err, store.ErrEmployeeNotFound):
		return app.NotFound(fmt.Sprintf("no employee found with ID: %s", employeeID), err)
	case errors.Is(err, store.ErrEmployeeEmailAlreadyExists):
		return app.InvalidInput(app.MsgEmployeeEmailAlreadyExists, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return app.InvalidInput(app.MsgEmployeeConstraint, err)
	default:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("employee storage failure")
		return app.Internal(err)
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
