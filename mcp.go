package wealthmcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/wagiedev/wealth-mcp-go/internal/mcp"
)

// Tool names.
const (
	ToolGetClients         = internalmcp.ToolGetClients
	ToolGetClientPositions = internalmcp.ToolGetClientPositions
	ToolGetRecommendations = internalmcp.ToolGetRecommendations
)

// Re-export tool response types for callers decoding results.
type (
	// ClientsResponse is the result of get_clients.
	ClientsResponse = internalmcp.ClientsResponse

	// PositionsResponse is the result of get_client_positions.
	PositionsResponse = internalmcp.PositionsResponse

	// RecommendationsResponse is the result of get_recommendations.
	RecommendationsResponse = internalmcp.RecommendationsResponse

	// ErrorPayload is the body of a failed tool call.
	ErrorPayload = internalmcp.ErrorPayload
)

// DecodeResult unmarshals a tool result into v. Error results are returned
// as an *ErrorPayload carrying the error code.
func DecodeResult(result *mcp.CallToolResult, v any) error {
	return internalmcp.DecodeResult(result, v)
}

// HTTPHandler serves the tools over the streamable HTTP transport. Every
// session shares the server's dataset.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}
