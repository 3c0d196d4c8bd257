// Package mcp exposes the wealth dataset as Model Context Protocol tools.
//
// A Registry holds the tool definitions and their typed handlers. It can be
// invoked directly, which is how tests and the CLI drive it, or installed on
// an official SDK server that serves the tools over stdio or HTTP.
//
// Handlers decode and validate their arguments into input structs, call the
// analytics layer and marshal the response as JSON text content. Failures are
// reported as error results carrying {"error", "error_code"}.
//
// HostConfig renders the mcpServers entry a desktop host needs to launch or
// reach the server.
package mcp
