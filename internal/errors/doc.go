// Package errors defines the error taxonomy for the wealth MCP server.
//
// Two failure classes exist: a ValidationError for malformed input (client
// identifiers, ISINs, tool arguments) and a NotFoundError for well-formed
// identifiers that are absent from the dataset. Both carry a stable error code
// that is surfaced to MCP callers and can be checked with errors.Is against
// ErrValidation and ErrNotFound.
package errors
