package errors

import "fmt"

// AuthenticationError means no valid caller identity was presented.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// ValidationError means a required input field is missing or malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InvalidFilterError means a query filter names an unknown field or
// operator, or uses inequality operators on more than one field.
type InvalidFilterError struct {
	Message string
}

func (e *InvalidFilterError) Error() string { return e.Message }

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// PermissionError means the caller is not the owning organizer.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

// ConflictError means the operation violates a state invariant, e.g.
// double registration or a sold out conference.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Unauthenticatedf(format string, a ...any) error {
	return &AuthenticationError{Message: fmt.Sprintf(format, a...)}
}

func Validationf(format string, a ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, a...)}
}

func InvalidFilterf(format string, a ...any) error {
	return &InvalidFilterError{Message: fmt.Sprintf(format, a...)}
}

func NotFoundf(format string, a ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, a...)}
}

func Permissionf(format string, a ...any) error {
	return &PermissionError{Message: fmt.Sprintf(format, a...)}
}

func Conflictf(format string, a ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, a...)}
}
