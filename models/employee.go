package models

import (
	"strings"
	"time"
)

// Gender is the closed set of values accepted for Employee.Gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every accepted Gender value.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// InlineImagePrefix marks an employee_photo value that carries the image
// itself as a data URI instead of a hosted URL.
const InlineImagePrefix = "data:image"

// IsInlineImage reports whether photo is an inline image payload that has to
// be uploaded to the asset host before persistence.
func IsInlineImage(photo string) bool {
	return strings.HasPrefix(photo, InlineImagePrefix)
}

// Employee is a stored employee record.
type Employee struct {
	EmployeeID    string    `json:"_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Gender        *Gender   `json:"gender"`
	Designation   string    `json:"designation"`
	Salary        float64   `json:"salary"`
	DateOfJoining time.Time `json:"date_of_joining"`
	Department    string    `json:"department"`

	// EmployeePhoto is nil or a hosted URL. Inline payloads never reach
	// storage.
	EmployeePhoto *string `json:"employee_photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}

// FullName returns "<first> <last>".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeInput is the payload of the add-employee operation.
//
// DateOfJoining is kept as the raw client string; it is parsed after
// validation. EmployeePhoto may be a URL or an inline image payload.
type EmployeeInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender,omitempty"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	EmployeePhoto string  `json:"employee_photo,omitempty"`
}

// EmployeeUpdate is the payload of the update-employee operation.
// Only non-nil fields are validated and written.
type EmployeeUpdate struct {
	FirstName     *string  `json:"first_name,omitempty"`
	LastName      *string  `json:"last_name,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Designation   *string  `json:"designation,omitempty"`
	Salary        *float64 `json:"salary,omitempty"`
	DateOfJoining *string  `json:"date_of_joining,omitempty"`
	Department    *string  `json:"department,omitempty"`
	EmployeePhoto *string  `json:"employee_photo,omitempty"`
}

// EmployeeChanges is a validated, storage-ready EmployeeUpdate: the date is
// parsed, the email normalized and any inline photo already replaced by a
// hosted URL.
type EmployeeChanges struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *Gender
	Designation   *string
	Salary        *float64
	DateOfJoining *time.Time
	Department    *string
	EmployeePhoto *string
	UpdatedAt     time.Time
}

// SearchFilter holds the optional designation and department filters of the
// employee search. Matching is case-insensitive substring, OR-combined.
type SearchFilter struct {
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
}

// IsEmpty reports whether neither filter is set.
func (f SearchFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Designation) == "" && strings.TrimSpace(f.Department) == ""
}

// DeleteResponse is returned by the delete-employee operation.
type DeleteResponse struct {
	Message string `json:"message"`
}
