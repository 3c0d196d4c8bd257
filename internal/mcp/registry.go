package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

// Registry is the dispatch table of the server's tools.
//
// The official SDK server only dispatches over a transport, so the registry
// keeps its own copy of every tool for direct invocation.
type Registry struct {
	logger *slog.Logger

	mu    sync.RWMutex
	tools map[string]*registeredTool
	order []string
}

type registeredTool struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
		tools:  make(map[string]*registeredTool, 4),
	}
}

// AddTool registers a tool. Registering a name twice replaces the handler.
func (r *Registry) AddTool(tool *mcp.Tool, handler mcp.ToolHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; !exists {
		r.order = append(r.order, tool.Name)
	}

	r.tools[tool.Name] = &registeredTool{
		tool:    tool,
		handler: handler,
	}
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// ListTools returns the registered tool definitions in registration order.
func (r *Registry) ListTools() []*mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].tool)
	}

	return out
}

// CallTool executes the named tool with args, which may be nil, a
// json.RawMessage, or any value that marshals to a JSON object.
//
// Tool failures are encoded in the result with IsError set; the returned
// error is reserved for arguments that cannot be marshalled.
func (r *Registry) CallTool(ctx context.Context, name string, args any) (*mcp.CallToolResult, error) {
	r.mu.RLock()
	t, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		r.logger.WarnContext(ctx, "unknown tool called", slog.String("tool", name))

		return ErrorResult(werrors.NotFound(werrors.KindTool, name)), nil
	}

	raw, err := rawArguments(args)
	if err != nil {
		return nil, fmt.Errorf("marshal arguments for %s: %w", name, err)
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: raw,
		},
	}

	result, err := t.handler(ctx, req)
	if err != nil {
		//nolint:nilerr // Handler errors are reported to the caller inside the result.
		return ErrorResult(err), nil
	}

	return result, nil
}

// Install registers every tool on server.
func (r *Registry) Install(server *mcp.Server) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		t := r.tools[name]
		server.AddTool(t.tool, t.handler)
	}
}

func rawArguments(args any) (json.RawMessage, error) {
	switch v := args.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}
