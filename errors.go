package wealthmcp

import "github.com/wagiedev/wealth-mcp-go/internal/errors"

// Re-export error types from internal package

// WealthError is the base interface for all domain errors.
type WealthError = errors.WealthError

// ValidationError indicates a malformed client id, ISIN or tool argument.
type ValidationError = errors.ValidationError

// NotFoundError indicates a well-formed identifier absent from the dataset.
type NotFoundError = errors.NotFoundError

// Re-export sentinel errors from internal package.
var (
	// ErrValidation matches every ValidationError.
	ErrValidation = errors.ErrValidation

	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.ErrNotFound
)

// Error codes reported in tool error payloads.
const (
	CodeInvalidFormat    = errors.CodeInvalidFormat
	CodeMissingParameter = errors.CodeMissingParameter
	CodeClientNotFound   = errors.CodeClientNotFound
	CodeSecurityNotFound = errors.CodeSecurityNotFound
	CodeToolNotFound     = errors.CodeToolNotFound
	CodeInternal         = errors.CodeInternal
)

// ErrorCode returns the tool error code for err.
func ErrorCode(err error) string {
	return errors.CodeOf(err)
}
