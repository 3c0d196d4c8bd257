package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Property describes one tool argument.
type Property struct {
	Name   string
	Schema *jsonschema.Schema
	// Required marks the argument as mandatory.
	Required bool
}

// ObjectSchema builds the input schema of a tool from its properties.
func ObjectSchema(props ...Property) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(props)),
	}

	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}

	return s
}

// String returns a string schema. A non-empty enum restricts the values.
func String(description string, enum ...string) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string", Description: description}

	for _, v := range enum {
		s.Enum = append(s.Enum, v)
	}

	return s
}

// Pattern returns a string schema constrained by a regular expression.
func Pattern(description, pattern string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description, Pattern: pattern}
}

// Integer returns an integer schema bounded by [minimum, maximum].
func Integer(description string, minimum, maximum float64) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: description, Minimum: &minimum, Maximum: &maximum}
}

// Number returns a number schema bounded by [minimum, maximum].
func Number(description string, minimum, maximum float64) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: description, Minimum: &minimum, Maximum: &maximum}
}

// Array returns an array schema of items.
func Array(description string, items *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Description: description, Items: items}
}

// NewTool creates a read-only, idempotent tool definition.
func NewTool(name, description string, inputSchema *jsonschema.Schema) *mcp.Tool {
	destructive := false
	openWorld := false

	return &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: &destructive,
			OpenWorldHint:   &openWorld,
		},
	}
}
