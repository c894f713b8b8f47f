package memory

import (
	"context"
	"sync"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driven"
)

// Ensure ConversationStore implements the interface.
var _ driven.ConversationStore = (*ConversationStore)(nil)

// ConversationStore keeps bounded turn windows per conversation id.
// All access is serialised through one mutex, so concurrent appends for
// the same id cannot interleave their read-modify-write.
type ConversationStore struct {
	mu         sync.RWMutex
	windows    map[string][]domain.Turn
	windowSize int
}

// ConversationOption configures the conversation store.
type ConversationOption func(*ConversationStore)

// WithWindowSize sets the maximum number of turns kept per conversation.
func WithWindowSize(size int) ConversationOption {
	return func(s *ConversationStore) {
		if size > 0 {
			s.windowSize = size
		}
	}
}

// NewConversationStore creates a new in-memory conversation store.
func NewConversationStore(opts ...ConversationOption) *ConversationStore {
	s := &ConversationStore{
		windows:    make(map[string][]domain.Turn),
		windowSize: domain.DefaultWindowSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Append adds a turn to the window for id, creating the window if absent,
// then truncates to the most recent windowSize turns (oldest dropped first).
func (s *ConversationStore) Append(_ context.Context, id string, turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := append(s.windows[id], turn)
	if len(window) > s.windowSize {
		// Copy so evicted turns do not pin the backing array
		trimmed := make([]domain.Turn, s.windowSize)
		copy(trimmed, window[len(window)-s.windowSize:])
		window = trimmed
	}
	s.windows[id] = window
	return nil
}

// Get returns a copy of the current window, oldest first.
// Unknown ids yield an empty slice and never create an entry.
func (s *ConversationStore) Get(_ context.Context, id string) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := s.windows[id]
	out := make([]domain.Turn, len(window))
	copy(out, window)
	return out, nil
}

// Clear removes the window entirely.
func (s *ConversationStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, id)
	return nil
}
