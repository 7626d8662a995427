package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Rule violations. Their text is shown to API clients as is.
var (
	ErrCredentialsRequired = errors.New("username/email and password are required")
	ErrUsernameTooShort    = errors.New("username must be at least 3 characters")
	ErrInvalidEmail        = errors.New("please provide a valid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")

	ErrNameRequired                  = errors.New("first name and last name are required")
	ErrInvalidEmployeeEmail          = errors.New("please provide a valid employee email")
	ErrDesignationDepartmentRequired = errors.New("designation and department are required")
	ErrSalaryTooLow                  = errors.New("salary must be at least 1000")
	ErrDateOfJoiningRequired         = errors.New("date of joining is required")
	ErrInvalidDateOfJoining          = errors.New("date of joining must be a date (YYYY-MM-DD)")
	ErrInvalidGender                 = errors.New("gender must be Male, Female, or Other")

	ErrEmployeeIDRequired   = errors.New("employee ID is required")
	ErrSearchFilterRequired = errors.New("provide at least one filter: designation or department")
)
