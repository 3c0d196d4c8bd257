package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	mcpgo "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistryListToolsAndCallTool(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.AddTool(
		NewTool("echo", "echoes text", ObjectSchema(Property{Name: "text", Schema: String("text"), Required: true})),
		func(_ context.Context, req *mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			var args struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, err
			}

			return TextResult("echo: " + args.Text), nil
		},
	)

	tools := r.ListTools()
	require.Len(t, tools, 1)
	assert.Equal(t, "echo", tools[0].Name)
	assert.True(t, tools[0].Annotations.ReadOnlyHint)
	assert.True(t, tools[0].Annotations.IdempotentHint)
	assert.Equal(t, []string{"echo"}, r.Names())

	result, err := r.CallTool(context.Background(), "echo", map[string]any{"text": "hello"})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "echo: hello", ResultText(result))

	raw, err := r.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"raw"}`))
	require.NoError(t, err)
	assert.Equal(t, "echo: raw", ResultText(raw))

	missing, err := r.CallTool(context.Background(), "unknown", nil)
	require.NoError(t, err)
	require.True(t, missing.IsError)

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal([]byte(ResultText(missing)), &payload))
	assert.Equal(t, werrors.CodeToolNotFound, payload.ErrorCode)
	assert.Contains(t, payload.Message, "unknown")
}

func TestRegistryCallTool_HandlerError(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.AddTool(
		NewTool("fails", "always fails", ObjectSchema()),
		func(_ context.Context, _ *mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			return nil, errors.New("boom")
		},
	)

	result, err := r.CallTool(context.Background(), "fails", nil)
	require.NoError(t, err)
	require.True(t, result.IsError)

	err = DecodeResult(result, nil)
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, werrors.CodeInternal, werrors.CodeOf(err))
}

func TestRegistryCallTool_UnmarshallableArguments(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.AddTool(NewTool("noop", "does nothing", ObjectSchema()),
		func(_ context.Context, _ *mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			return TextResult("ok"), nil
		})

	_, err := r.CallTool(context.Background(), "noop", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
}

func TestRegistry_ReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry(discardLogger())
	handler := func(text string) mcpgo.ToolHandler {
		return func(_ context.Context, _ *mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			return TextResult(text), nil
		}
	}

	r.AddTool(NewTool("a", "first", ObjectSchema()), handler("a1"))
	r.AddTool(NewTool("b", "second", ObjectSchema()), handler("b"))
	r.AddTool(NewTool("a", "first again", ObjectSchema()), handler("a2"))

	assert.Equal(t, []string{"a", "b"}, r.Names())

	result, err := r.CallTool(context.Background(), "a", nil)
	require.NoError(t, err)
	assert.Equal(t, "a2", ResultText(result))
}

func TestSchemaBuilders(t *testing.T) {
	s := ObjectSchema(
		Property{Name: "id", Schema: Pattern("identifier", `^[0-9]+$`), Required: true},
		Property{Name: "kind", Schema: String("kind", "a", "b")},
		Property{Name: "n", Schema: Integer("count", 1, 10)},
		Property{Name: "w", Schema: Number("weight", 0, 1)},
		Property{Name: "ids", Schema: Array("ids", String("id"))},
	)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "object", got["type"])
	assert.Equal(t, []any{"id"}, got["required"])

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, props["kind"].(map[string]any)["enum"])
	assert.Equal(t, float64(10), props["n"].(map[string]any)["maximum"])
	assert.Equal(t, "array", props["ids"].(map[string]any)["type"])
}
