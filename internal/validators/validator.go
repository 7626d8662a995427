// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-staff-keeper/models"
)

// RequestValidator implements the Validator interface for every request
// model of the API: SignupRequest, Credentials, EmployeeInput,
// EmployeeUpdate, SearchFilter and bare employee identifiers (string).
//
// Value and pointer forms are accepted. Validation is fail-fast: the first
// rule that does not hold is returned.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model and
// ErrUnknownField if a requested field does not apply to it.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.EmployeeInput:
		return v.validateEmployeeInput(value, fields...)
	case *models.EmployeeInput:
		return v.validateEmployeeInput(*value, fields...)

	case models.EmployeeUpdate:
		return v.validateEmployeeUpdate(value, fields...)
	case *models.EmployeeUpdate:
		return v.validateEmployeeUpdate(*value, fields...)

	case models.SearchFilter:
		return v.validateSearchFilter(value, fields...)
	case *models.SearchFilter:
		return v.validateSearchFilter(*value, fields...)

	case string:
		return v.validateEmployeeID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignup checks username, email and password, in that order.
func (v *RequestValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = signupFields
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(req.Username)) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldEmail:
			if !IsValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(req.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if blank(c.Identifier) || c.Password == "" {
				return ErrCredentialsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmployeeInput validates an add-employee payload. Every rule of the
// employee table applies; gender is the only optional field.
func (v *RequestValidator) validateEmployeeInput(in models.EmployeeInput, fields ...string) error {
	if len(fields) == 0 {
		fields = employeeFields
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blank(in.FirstName) || blank(in.LastName) {
				return ErrNameRequired
			}
		case FieldEmail:
			if !IsValidEmail(in.Email) {
				return ErrInvalidEmployeeEmail
			}
		case FieldDesignationDepartment:
			if blank(in.Designation) || blank(in.Department) {
				return ErrDesignationDepartmentRequired
			}
		case FieldSalary:
			if in.Salary < MinSalary {
				return ErrSalaryTooLow
			}
		case FieldDateOfJoining:
			if err := validateDate(in.DateOfJoining); err != nil {
				return err
			}
		case FieldGender:
			if in.Gender != "" && !IsValidGender(in.Gender) {
				return ErrInvalidGender
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmployeeUpdate applies the employee table to the fields present
// in the update. A present field must satisfy the same rule as on create;
// an empty gender is rejected because it cannot clear the stored value.
func (v *RequestValidator) validateEmployeeUpdate(upd models.EmployeeUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = employeeFields
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if presentBlank(upd.FirstName) || presentBlank(upd.LastName) {
				return ErrNameRequired
			}
		case FieldEmail:
			if upd.Email != nil && !IsValidEmail(*upd.Email) {
				return ErrInvalidEmployeeEmail
			}
		case FieldDesignationDepartment:
			if presentBlank(upd.Designation) || presentBlank(upd.Department) {
				return ErrDesignationDepartmentRequired
			}
		case FieldSalary:
			if upd.Salary != nil && *upd.Salary < MinSalary {
				return ErrSalaryTooLow
			}
		case FieldDateOfJoining:
			if upd.DateOfJoining != nil {
				if err := validateDate(*upd.DateOfJoining); err != nil {
					return err
				}
			}
		case FieldGender:
			if upd.Gender != nil && !IsValidGender(*upd.Gender) {
				return ErrInvalidGender
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSearchFilter(filter models.SearchFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSearchFilter}
	}

	for _, f := range fields {
		switch f {
		case FieldSearchFilter:
			if filter.IsEmpty() {
				return ErrSearchFilterRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEmployeeID(id string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmployeeID}
	}

	for _, f := range fields {
		switch f {
		case FieldEmployeeID:
			if blank(id) {
				return ErrEmployeeIDRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDate(value string) error {
	if blank(value) {
		return ErrDateOfJoiningRequired
	}
	_, err := ParseDate(value)
	return err
}

// presentBlank reports whether an optional field was supplied empty.
func presentBlank(s *string) bool {
	return s != nil && blank(*s)
}
