// Package errors provides sentinel errors for the chisel CLI.
package errors

import (
	"errors"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates the proposed package name or flags failed validation.
	ErrValidation = errors.New("validation error")

	// ErrPrecondition indicates a required ambient file or directory state was
	// not satisfied before any mutation was attempted.
	ErrPrecondition = errors.New("precondition failed")

	// ErrEmit indicates a filesystem write failed after emission began.
	// Already-written files are left in place; there is no rollback.
	ErrEmit = errors.New("emit error")
)

// DetailError captures structured, operator-facing error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Violations lists every individual rule violation for validation
	// failures, so the operator sees the complete set in one report.
	Violations []string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	for _, v := range e.Violations {
		b.WriteString("    - ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error carrying every violation found.
func NewValidationError(message string, violations []string) error {
	return &DetailError{
		Type:       "validation failed",
		Message:    message,
		Violations: violations,
		Cause:      ErrValidation,
	}
}

// NewPreconditionError creates a precondition error with details.
func NewPreconditionError(message, location, hint string) error {
	return &DetailError{
		Type:     "precondition failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrPrecondition,
	}
}

// NewEmitError creates an emit error wrapping the triggering write failure.
func NewEmitError(message, location string, cause error) error {
	return &DetailError{
		Type:     "emit failed",
		Message:  message,
		Location: location,
		Hint:     "Already-written files are not rolled back; remove the partial scaffold before retrying.",
		Cause:    errors.Join(ErrEmit, cause),
	}
}
