package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

// ErrorPayload is the JSON body of a failed tool call.
type ErrorPayload struct {
	Message   string `json:"error"`
	ErrorCode string `json:"error_code"`
}

var _ werrors.WealthError = (*ErrorPayload)(nil)

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// JSONResult marshals v as indented JSON text content.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}

	return TextResult(string(data)), nil
}

// ErrorResult creates a CallToolResult carrying err as an ErrorPayload.
func ErrorResult(err error) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(ErrorPayload{
		Message:   err.Error(),
		ErrorCode: werrors.CodeOf(err),
	}, "", "  ")

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
		IsError: true,
	}
}

// ResultText concatenates the text content of result.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	var text string

	for _, c := range result.Content {
		if t, ok := c.(*mcp.TextContent); ok {
			text += t.Text
		}
	}

	return text
}

// DecodeResult unmarshals the JSON text content of result into v. Error
// results decode into an ErrorPayload returned as error.
func DecodeResult(result *mcp.CallToolResult, v any) error {
	if result == nil {
		return errors.New("nil tool result")
	}

	text := ResultText(result)

	if result.IsError {
		var payload ErrorPayload
		if err := json.Unmarshal([]byte(text), &payload); err != nil {
			return fmt.Errorf("tool error: %s", text)
		}

		return &payload
	}

	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("decode tool result: %w", err)
	}

	return nil
}

func (p *ErrorPayload) Error() string { return p.Message }
func (p *ErrorPayload) Code() string  { return p.ErrorCode }
