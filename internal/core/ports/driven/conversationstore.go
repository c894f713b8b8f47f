package driven

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
)

// ConversationStore keeps the bounded turn window per conversation id.
// State is process-lifetime only; durable conversation storage is an
// external collaborator concern.
type ConversationStore interface {
	// Append adds a turn to the window for id, creating the window if
	// absent, then truncates to the most recent turns (oldest evicted
	// first).
	Append(ctx context.Context, id string, turn domain.Turn) error

	// Get returns a copy of the current window, oldest first.
	// Unknown ids yield an empty slice and must not create an entry.
	Get(ctx context.Context, id string) ([]domain.Turn, error)

	// Clear removes the window entirely.
	Clear(ctx context.Context, id string) error
}
