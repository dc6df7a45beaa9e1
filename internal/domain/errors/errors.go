package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDeliveryFailed     = errors.New("sms delivery failed")
)

// Unique index names reported by ConflictError.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPhone    = "phone_number"
)

// ConflictError reports which unique index rejected an insert.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s", e.Field)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflict builds a ConflictError for the given unique index.
func NewConflict(field string) error {
	return &ConflictError{Field: field}
}

// ConflictField extracts the index name from a conflict, if err carries one.
func ConflictField(err error) (string, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Field, true
	}
	return "", false
}

// InvalidInput wraps ErrInvalidInput with a human readable reason.
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
