package driving

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
)

// AnswerService runs the question-answering pipeline:
// retrieve -> assemble -> complete -> record.
type AnswerService interface {
	// Answer handles one inbound question.
	// Empty questions are rejected with domain.ErrEmptyQuestion before any
	// retrieval or completion work.
	Answer(ctx context.Context, req domain.AnswerRequest) (*domain.Answer, error)

	// Retrieve returns the top-k chunks for a query without calling the
	// completion service. Used by the search surfaces.
	Retrieve(ctx context.Context, query string, k int) ([]domain.Chunk, error)
}

// ConversationService manages conversation windows.
type ConversationService interface {
	// History returns the stored window for a conversation id.
	History(ctx context.Context, id string) ([]domain.Turn, error)

	// Clear drops a conversation window.
	Clear(ctx context.Context, id string) error
}
