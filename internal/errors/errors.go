package errors

import (
	"errors"
	"fmt"
)

// WealthError is the base interface for all domain errors.
type WealthError interface {
	error
	// Code returns the machine-readable error code reported to tool callers.
	Code() string
}

// Compile-time verification that all error types implement WealthError.
var (
	_ WealthError = (*ValidationError)(nil)
	_ WealthError = (*NotFoundError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrValidation matches every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("not found")
)

// Error codes reported in tool error payloads.
const (
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeClientNotFound   = "CLIENT_NOT_FOUND"
	CodeSecurityNotFound = "SECURITY_NOT_FOUND"
	CodeToolNotFound     = "TOOL_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// Kinds of resources a NotFoundError can refer to.
const (
	KindClient   = "client"
	KindSecurity = "security"
	KindTool     = "tool"
)

// ValidationError indicates a malformed identifier or argument.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}

	if e.Reason == "" {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}

	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Code implements WealthError.
func (e *ValidationError) Code() string {
	if e.Value == "" {
		return CodeMissingParameter
	}

	return CodeInvalidFormat
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError indicates a well-formed identifier that is not in the dataset.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Code implements WealthError.
func (e *NotFoundError) Code() string {
	switch e.Kind {
	case KindClient:
		return CodeClientNotFound
	case KindSecurity:
		return CodeSecurityNotFound
	case KindTool:
		return CodeToolNotFound
	default:
		return CodeNotFound
	}
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Invalid is a shorthand for constructing a ValidationError.
func Invalid(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// Missing builds a ValidationError for an absent required field.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// NotFound is a shorthand for constructing a NotFoundError.
func NotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// CodeOf returns the error code for err, or CodeInternal when err is not a
// WealthError.
func CodeOf(err error) string {
	var we WealthError
	if errors.As(err, &we) {
		return we.Code()
	}

	return CodeInternal
}
