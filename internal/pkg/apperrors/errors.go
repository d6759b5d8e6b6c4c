package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrAlreadyExists = errors.New("resource already exists")

	ErrDatabase = errors.New("database error")

	ErrInternalServer = errors.New("internal server error")

	ErrUnauthorized = errors.New("unauthorized")
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeDatabase        = "DB_ERROR"
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {
	return NewBindingError(&ValidationError{Field: field, Message: message})
}

// BindingError carries every field rejected while decoding a request, in
// declaration order.
type BindingError struct {
	Errors []*ValidationError
}

func (e *BindingError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *BindingError) Unwrap() error {
	return ErrValidation
}

func NewBindingError(errs ...*ValidationError) error {
	return &BindingError{Errors: errs}
}

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewInvalidArgument(message string) error {
	return &AppError{Code: CodeInvalidArgument, Message: message, Cause: ErrInvalidArgument}
}

func NewNotFound(message string) error {
	return &AppError{Code: CodeNotFound, Message: message, Cause: ErrNotFound}
}

func WrapDatabaseError(cause error, message string) error {
	return &AppError{
		Code:    CodeDatabase,
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrDatabase, cause),
	}
}

// UniqueViolationError reports a write rejected by a store integrity
// constraint. Column is "cpf", "email" or empty when the constraint could
// not be attributed to a unique column.
type UniqueViolationError struct {
	Column string
	Cause  error
}

func (e *UniqueViolationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: integrity constraint violated", ErrAlreadyExists)
	}
	return fmt.Sprintf("%s: duplicate value for column '%s'", ErrAlreadyExists, e.Column)
}

func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrAlreadyExists
}

func (e *UniqueViolationError) Unwrap() error {
	return e.Cause
}

func NewUniqueViolation(column string, cause error) error {
	return &UniqueViolationError{Column: column, Cause: cause}
}
