package validators

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-staff-keeper/models"
)

// Field name constants used to restrict validation to a subset of rules.
// The order of the default field lists below is the reporting order.
const (
	FieldCredentials = "credentials"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"

	FieldName                  = "name"
	FieldDesignationDepartment = "designation_department"
	FieldSalary                = "salary"
	FieldDateOfJoining         = "date_of_joining"
	FieldGender                = "gender"

	FieldEmployeeID   = "employee_id"
	FieldSearchFilter = "search_filter"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes  = 72
	MinSalary         = 1000
)

var (
	signupFields   = []string{FieldUsername, FieldEmail, FieldPassword}
	employeeFields = []string{FieldName, FieldEmail, FieldDesignationDepartment, FieldSalary, FieldDateOfJoining, FieldGender}
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{time.DateOnly, time.RFC3339}

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidGender reports whether g is one of [models.Genders].
func IsValidGender(g string) bool {
	return slices.Contains(models.Genders, models.Gender(g))
}

// ParseDate parses a date of joining given either as a calendar date
// ("2006-01-02") or as an RFC 3339 timestamp. The result is in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateOfJoining
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
