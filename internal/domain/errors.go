package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrStageIncomplete means the current workflow step is not finished yet.
	ErrStageIncomplete = errors.New("stage incomplete")
	// ErrLocked marks a mutation attempted on a posted day. Services turn it
	// into a no-op result; it never reaches the transport.
	ErrLocked = errors.New("day is locked")
	// ErrNotConnected means the user has no usable publishing credential.
	ErrNotConnected = errors.New("not connected")
	// ErrExternal means the external publishing network rejected or failed the call.
	ErrExternal = errors.New("external publish failed")
)

// Matrix guard errors. All of them are validation failures.
var (
	ErrLastRow           = fmt.Errorf("%w: cannot delete the last row", ErrValidation)
	ErrLastColumn        = fmt.Errorf("%w: cannot delete the last column", ErrValidation)
	ErrEmptyRowExists    = fmt.Errorf("%w: you have an empty row already", ErrValidation)
	ErrEmptyColumnExists = fmt.Errorf("%w: you have an empty column already", ErrValidation)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StageIncompleteError reports which field blocks leaving the current status.
type StageIncompleteError struct {
	Status Status
	Field  string
}

func (e *StageIncompleteError) Error() string {
	return fmt.Sprintf("stage %s incomplete: %s is required", e.Status, e.Field)
}

func (e *StageIncompleteError) Unwrap() error { return ErrStageIncomplete }

// PublishError carries the reason reported by the external network.
type PublishError struct {
	Reason     string
	StatusCode int
}

func (e *PublishError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("publish failed (status %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("publish failed: %s", e.Reason)
}

func (e *PublishError) Unwrap() error { return ErrExternal }
