package employee

import "errors"

var (
	ErrInvalidEmployeeID       = errors.New("employee: invalid employee id")
	ErrInvalidName             = errors.New("employee: invalid name")
	ErrInvalidDepartment       = errors.New("employee: invalid department")
	ErrInvalidSalary           = errors.New("employee: salary must be greater than zero")
	ErrInvalidJoiningDate      = errors.New("employee: invalid joining date")
	ErrInvalidSkills           = errors.New("employee: skills must be provided")
	ErrInvalidSkip             = errors.New("employee: skip must be greater than or equal to 0")
	ErrInvalidLimit            = errors.New("employee: limit must be between 1 and 1000")
	ErrNoFieldsToUpdate        = errors.New("employee: no fields to update")
	ErrEmployeeNotFound        = errors.New("employee: not found")
	ErrEmployeeIDAlreadyExists = errors.New("employee: employee id already exists")
)

// IsValidationError は入力検証エラーかどうかを判定します。
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidEmployeeID),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidDepartment),
		errors.Is(err, ErrInvalidSalary),
		errors.Is(err, ErrInvalidJoiningDate),
		errors.Is(err, ErrInvalidSkills),
		errors.Is(err, ErrInvalidSkip),
		errors.Is(err, ErrInvalidLimit):
		return true
	default:
		return false
	}
}
