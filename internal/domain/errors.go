package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
)

// Sentinels for errors.Is checks.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.message)
}

func (e *ValidationError) Code() ErrorCode {
	return CodeInvalidInput
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, message: message}
}

// NotFoundError represents a not found error
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Resource, e.ID)
}

func (e *NotFoundError) Code() ErrorCode {
	return CodeNotFound
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewChoiceNotFoundError(choiceID int) error {
	return &NotFoundError{Resource: "choice", ID: choiceID}
}
