package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// employeeRepository is the SQL implementation of [EmployeeRepository]. It
// executes all employee CRUD operations against the "employees" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// request's fields.
type employeeRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEmployee inserts employee and returns the stored row.
func (e *employeeRepository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	query, args, err := buildInsertEmployeeQuery(e.builder, employee)
	if err != nil {
		return models.Employee{}, e.buildError(ctx, "employeeRepository.CreateEmployee", err)
	}

	created, err := scanEmployee(e.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Employee{}, e.writeError(ctx, "employeeRepository.CreateEmployee", employee.EmployeeID, err)
	}

	return created, nil
}

// FindEmployeeByID returns the employee with the given identifier or
// [ErrEmployeeNotFound].
func (e *employeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (models.Employee, error) {
	return e.findEmployee(ctx, "employeeRepository.FindEmployeeByID", sq.Eq{"employee_id": employeeID})
}

// FindEmployeeByEmail returns the employee holding email or
// [ErrEmployeeNotFound]. Emails are stored lower-cased.
func (e *employeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (models.Employee, error) {
	return e.findEmployee(ctx, "employeeRepository.FindEmployeeByEmail", sq.Eq{"email": email})
}

func (e *employeeRepository) findEmployee(ctx context.Context, funcName string, where sq.Sqlizer) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeesQuery(e.builder, where)
	if err != nil {
		return models.Employee{}, e.buildError(ctx, funcName, err)
	}

	employee, err := scanEmployee(e.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to find employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return employee, nil
}

// ListEmployees returns every employee, newest first. An empty table yields
// an empty, non-nil slice.
func (e *employeeRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	query, args, err := buildSelectEmployeesQuery(e.builder, nil)
	if err != nil {
		return nil, e.buildError(ctx, "employeeRepository.ListEmployees", err)
	}

	return e.queryEmployees(ctx, "employeeRepository.ListEmployees", query, args)
}

// SearchEmployees returns employees whose designation or department contains
// the corresponding filter, ignoring case, newest first.
func (e *employeeRepository) SearchEmployees(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	query, args, err := buildSearchEmployeesQuery(e.builder, filter)
	if err != nil {
		return nil, e.buildError(ctx, "employeeRepository.SearchEmployees", err)
	}

	return e.queryEmployees(ctx, "employeeRepository.SearchEmployees", query, args)
}

// UpdateEmployee writes the supplied fields and updated_at in one statement.
// The storage constraints still apply: a taken email yields
// [ErrEmployeeEmailAlreadyExists], a failed CHECK [ErrConstraintViolation].
func (e *employeeRepository) UpdateEmployee(ctx context.Context, employeeID string, changes models.EmployeeChanges) (models.Employee, error) {
	query, args, err := buildUpdateEmployeeQuery(e.builder, employeeID, changes)
	if err != nil {
		return models.Employee{}, e.buildError(ctx, "employeeRepository.UpdateEmployee", err)
	}

	updated, err := scanEmployee(e.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Employee{}, e.writeError(ctx, "employeeRepository.UpdateEmployee", employeeID, err)
	}

	return updated, nil
}

// DeleteEmployee removes the employee and returns the deleted row. Deleting
// a missing identifier always yields [ErrEmployeeNotFound].
func (e *employeeRepository) DeleteEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	query, args, err := buildDeleteEmployeeQuery(e.builder, employeeID)
	if err != nil {
		return models.Employee{}, e.buildError(ctx, "employeeRepository.DeleteEmployee", err)
	}

	deleted, err := scanEmployee(e.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Employee{}, e.writeError(ctx, "employeeRepository.DeleteEmployee", employeeID, err)
	}

	return deleted, nil
}

func (e *employeeRepository) queryEmployees(ctx context.Context, funcName, query string, args []any) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	rows, err := e.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0, 50)

	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan employee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		employees = append(employees, employee)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return employees, nil
}

// writeError maps the error of an INSERT/UPDATE/DELETE ... RETURNING
// statement to a store sentinel.
func (e *employeeRepository) writeError(ctx context.Context, funcName, employeeID string, err error) error {
	log := logger.FromContext(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrEmployeeNotFound
	}

	switch e.errorClassificator.Classify(err) {
	case UniqueViolation:
		log.Debug().Str("func", funcName).Str("employee_id", employeeID).Msg("employee email already exists")
		return ErrEmployeeEmailAlreadyExists
	case ConstraintViolation:
		constraint := e.errorClassificator.Constraint(err)
		log.Debug().Str("func", funcName).Str("employee_id", employeeID).Str("constraint", constraint).Msg("employee constraint violated")
		return fmt.Errorf("%w: %s", ErrConstraintViolation, constraint)
	}

	log.Err(err).Str("func", funcName).Str("employee_id", employeeID).Msg("failed to write employee")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (e *employeeRepository) buildError(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to build query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var employee models.Employee
	err := row.Scan(
		&employee.EmployeeID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Gender,
		&employee.Designation,
		&employee.Salary,
		scanTime(&employee.DateOfJoining),
		&employee.Department,
		&employee.EmployeePhoto,
		scanTime(&employee.CreatedAt),
		scanTime(&employee.UpdatedAt),
	)
	return employee, err
}
