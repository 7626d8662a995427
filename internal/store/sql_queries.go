package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-staff-keeper/models"
)

const (
	usersTable     = "users"
	employeesTable = "employees"
)

// userColumns is the column order used by every user query and by scanUser.
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"password_hash",
	"created_at",
	"updated_at",
}

// employeeColumns is the column order used by every employee query and by
// scanEmployee.
var employeeColumns = []string{
	"employee_id",
	"first_name",
	"last_name",
	"email",
	"gender",
	"designation",
	"salary",
	"date_of_joining",
	"department",
	"employee_photo",
	"created_at",
	"updated_at",
}

// newestFirst orders employees by creation time; the time-ordered UUIDv7 key
// breaks ties.
var newestFirst = []string{"created_at DESC", "employee_id DESC"}

// likeEscaper escapes LIKE wildcards so that filters match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func nullableGender(g *models.Gender) any {
	if g == nil {
		return nil
	}
	return string(*g)
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildInsertEmployeeQuery(b sq.StatementBuilderType, e models.Employee) (string, []any, error) {
	return b.Insert(employeesTable).
		Columns(employeeColumns...).
		Values(
			e.EmployeeID,
			e.FirstName,
			e.LastName,
			e.Email,
			nullableGender(e.Gender),
			e.Designation,
			e.Salary,
			e.DateOfJoining,
			e.Department,
			e.EmployeePhoto,
			e.CreatedAt,
			e.UpdatedAt,
		).
		Suffix(returning(employeeColumns)).
		ToSql()
}

// buildSelectEmployeesQuery selects employees matching where, newest first.
// A nil where selects every employee.
func buildSelectEmployeesQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(employeeColumns...).
		From(employeesTable).
		OrderBy(newestFirst...)
	if where != nil {
		query = query.Where(where)
	}

	return query.ToSql()
}

// buildSearchEmployeesQuery matches designation and department as
// case-insensitive substrings. Blank filters are skipped and the remaining
// ones are OR-combined.
func buildSearchEmployeesQuery(b sq.StatementBuilderType, filter models.SearchFilter) (string, []any, error) {
	conditions := sq.Or{}
	if f := strings.TrimSpace(filter.Designation); f != "" {
		conditions = append(conditions, containsIgnoreCase("designation", f))
	}
	if f := strings.TrimSpace(filter.Department); f != "" {
		conditions = append(conditions, containsIgnoreCase("department", f))
	}

	return buildSelectEmployeesQuery(b, conditions)
}

// containsIgnoreCase folds both sides with the database's LOWER so the
// column and the pattern go through the same case mapping.
func containsIgnoreCase(column, value string) sq.Sqlizer {
	pattern := "%" + likeEscaper.Replace(value) + "%"
	return sq.Expr("LOWER("+column+`) LIKE LOWER(?) ESCAPE '\'`, pattern)
}

// buildUpdateEmployeeQuery writes updated_at and every non-nil field of
// changes, returning the updated row.
func buildUpdateEmployeeQuery(b sq.StatementBuilderType, employeeID string, changes models.EmployeeChanges) (string, []any, error) {
	set := map[string]any{
		"updated_at": changes.UpdatedAt,
	}

	if changes.FirstName != nil {
		set["first_name"] = *changes.FirstName
	}
	if changes.LastName != nil {
		set["last_name"] = *changes.LastName
	}
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.Gender != nil {
		set["gender"] = string(*changes.Gender)
	}
	if changes.Designation != nil {
		set["designation"] = *changes.Designation
	}
	if changes.Salary != nil {
		set["salary"] = *changes.Salary
	}
	if changes.DateOfJoining != nil {
		set["date_of_joining"] = *changes.DateOfJoining
	}
	if changes.Department != nil {
		set["department"] = *changes.Department
	}
	if changes.EmployeePhoto != nil {
		set["employee_photo"] = *changes.EmployeePhoto
	}

	return b.Update(employeesTable).
		SetMap(set).
		Where(sq.Eq{"employee_id": employeeID}).
		Suffix(returning(employeeColumns)).
		ToSql()
}

func buildDeleteEmployeeQuery(b sq.StatementBuilderType, employeeID string) (string, []any, error) {
	return b.Delete(employeesTable).
		Where(sq.Eq{"employee_id": employeeID}).
		Suffix(returning(employeeColumns)).
		ToSql()
}
