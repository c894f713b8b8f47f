// Package mcp provides an MCP (Model Context Protocol) server adapter for Parley.
// It lets AI assistants ask questions against the local knowledge base and
// search its indexed documents.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
