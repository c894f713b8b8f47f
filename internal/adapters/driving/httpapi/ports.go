// Package httpapi exposes the answer pipeline and document lifecycle over a
// JSON HTTP API.
package httpapi

import (
	"errors"

	"github.com/parley-labs/parley/internal/core/ports/driving"
)

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("httpapi: answer service is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("httpapi: document service is required")

// Ports aggregates all driving port interfaces required by the HTTP API.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer runs the question-answering pipeline.
	Answer driving.AnswerService

	// Conversation manages conversation windows.
	Conversation driving.ConversationService

	// Document manages the document lifecycle.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	// Conversation is optional; history endpoints return 404 without it
	return nil
}
