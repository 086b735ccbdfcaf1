package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidDate   = errors.New("invalid date")
	ErrMissingField  = errors.New("missing field")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrStore         = errors.New("store error")
)

// AppError carries an error kind plus the human-readable message the
// HTTP layer sends back as the response body.
type AppError struct {
	Err     error  // error kind, matched with errors.Is
	Message string // response body text
	Field   string // optional: input field that caused the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidNumber(field string) *AppError {
	return &AppError{
		Err:     ErrInvalidNumber,
		Message: "Value is not a number",
		Field:   field,
	}
}

func InvalidDate(field string) *AppError {
	return &AppError{
		Err:     ErrInvalidDate,
		Message: "Invalid date",
		Field:   field,
	}
}

// InvalidNewDate is the creation-time variant: an empty date would have
// been accepted, so the message points the caller at that escape hatch.
func InvalidNewDate(field string) *AppError {
	return &AppError{
		Err:     ErrInvalidDate,
		Message: "Invalid date, leave the date blank to use the current date",
		Field:   field,
	}
}

func MissingField(field, message string) *AppError {
	return &AppError{
		Err:     ErrMissingField,
		Message: message,
		Field:   field,
	}
}

func MissingUserID() *AppError {
	return MissingField("userId", "Please specify a user Id")
}

func UserNotFound() *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: "User was not found",
	}
}

func UserAlreadyExists() *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: "User already exists",
	}
}

// Store wraps an underlying database failure. The driver error stays on
// the chain for logging; the message sent to clients is generic.
func Store(err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrStore, err),
		Message: "Database error",
	}
}
