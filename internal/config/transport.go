// Package config loads the server configuration from the environment.
package config

import "strings"

// Transport selects how the MCP server talks to its host.
type Transport string

const (
	// TransportStdio serves a single host over stdin and stdout.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves streamable HTTP sessions on HTTPAddr.
	TransportHTTP Transport = "http"
)

// NormalizeTransport maps transport aliases to their canonical name.
//
// Aliases:
//   - "streamable-http", "streamable_http" -> "http"
//   - "" -> "stdio"
func NormalizeTransport(name string) Transport {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "stdio":
		return TransportStdio
	case "http", "streamable-http", "streamable_http":
		return TransportHTTP
	default:
		return Transport(n)
	}
}

// Valid reports whether t is a supported transport.
func (t Transport) Valid() bool {
	return t == TransportStdio || t == TransportHTTP
}
