package driven

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
)

// CompletionService is the remote chat-completion endpoint.
//
// Implementations may include:
//   - OpenAI (and OpenAI-compatible APIs)
//   - Ollama (local models)
type CompletionService interface {
	// Chat maps an ordered turn sequence to one generated continuation.
	// The call runs to completion or error; no retry, no cancellation
	// beyond ctx.
	Chat(ctx context.Context, turns []domain.Turn, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatOptions configures sampling for a completion call.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
