package mcp

import (
	"github.com/parley-labs/parley/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer runs the question-answering pipeline.
	Answer driving.AnswerService

	// Document manages the document lifecycle.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	// Document is optional; the list_documents tool is skipped without it
	return nil
}
