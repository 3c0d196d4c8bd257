package mcp

import "encoding/json"

// ServerType is the transport a host uses to reach the server.
type ServerType string

const (
	// ServerTypeStdio launches the server binary and talks over stdio.
	ServerTypeStdio ServerType = "stdio"
	// ServerTypeHTTP connects to a running streamable HTTP endpoint.
	ServerTypeHTTP ServerType = "http"
)

// ServerConfig is one entry of a host's mcpServers table.
type ServerConfig interface {
	GetType() ServerType
}

var (
	_ ServerConfig = (*StdioServerConfig)(nil)
	_ ServerConfig = (*HTTPServerConfig)(nil)
)

// StdioServerConfig tells a host how to launch the server.
type StdioServerConfig struct {
	Type    *ServerType       `json:"type,omitempty"` // hosts assume stdio when absent
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// GetType implements ServerConfig.
func (c *StdioServerConfig) GetType() ServerType {
	if c.Type != nil {
		return *c.Type
	}

	return ServerTypeStdio
}

// HTTPServerConfig points a host at a streamable HTTP endpoint.
type HTTPServerConfig struct {
	Type    ServerType        `json:"type"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

// GetType implements ServerConfig.
func (c *HTTPServerConfig) GetType() ServerType { return c.Type }

// HostConfig is the configuration document desktop assistant hosts read to
// discover MCP servers.
type HostConfig struct {
	MCPServers map[string]ServerConfig `json:"mcpServers"`
}

// StdioHostConfig registers name as a server launched with command and args.
// Nil args and env are written as empty values.
func StdioHostConfig(name, command string, args []string, env map[string]string) HostConfig {
	if args == nil {
		args = []string{}
	}

	if env == nil {
		env = map[string]string{}
	}

	return HostConfig{MCPServers: map[string]ServerConfig{
		name: &StdioServerConfig{Command: command, Args: args, Env: env},
	}}
}

// HTTPHostConfig registers name as a server reachable at url.
func HTTPHostConfig(name, url string) HostConfig {
	return HostConfig{MCPServers: map[string]ServerConfig{
		name: &HTTPServerConfig{Type: ServerTypeHTTP, URL: url},
	}}
}

// MarshalIndent renders the document the way hosts store it.
func (h HostConfig) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(h, "", "  ")
}
