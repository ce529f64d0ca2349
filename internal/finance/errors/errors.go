package errors

import (
	"errors"
	"fmt"
)

// ValidationError signals an input or business-rule violation. The API layer
// maps it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func NewValidationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// NotFoundError signals that the requested entity does not exist. The API
// layer maps it to 404.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

var (
	ErrUserNotFound        = NewNotFoundError("user not found")
	ErrCategoryNotFound    = NewNotFoundError("category not found")
	ErrTransactionNotFound = NewNotFoundError("transaction not found")

	ErrEmailAlreadyExists = NewValidationError("a user with this email already exists")
	ErrTypeMismatch       = NewValidationError("transaction type must match category type")
)
