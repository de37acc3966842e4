package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("token not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound      = fmt.Errorf("student not found: %w", ErrResourceNotFound)
	ErrStudentAlreadyExists = fmt.Errorf("student already exists: %w", ErrConflict)
	ErrInvalidStudentID     = errors.New("invalid student id format")
	ErrDatabaseUnavailable  = errors.New("database unavailable")
)

// ConflictError reports a duplicate resource and carries the record that
// already occupies the slot, so responses can echo the existing data.
type ConflictError struct {
	Message  string
	Existing interface{}
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrConflict.Error()
}

// Unwrap makes errors.Is(err, ErrConflict) and ErrStudentAlreadyExists work
func (e *ConflictError) Unwrap() error {
	return ErrStudentAlreadyExists
}

// NewConflictError creates a conflict error with the existing record attached
func NewConflictError(message string, existing interface{}) *ConflictError {
	return &ConflictError{
		Message:  message,
		Existing: existing,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
