// Package driving provides interfaces for the application's entry points
// (primary/inbound ports). Adapters such as the HTTP API, the CLI and the
// MCP server depend on these, never on concrete services.
package driving
