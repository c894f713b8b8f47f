package services

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driven"
	"github.com/parley-labs/parley/internal/core/ports/driving"
)

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// ConversationService exposes conversation windows to the driving adapters.
type ConversationService struct {
	store driven.ConversationStore
}

// NewConversationService creates a conversation service.
func NewConversationService(store driven.ConversationStore) *ConversationService {
	return &ConversationService{store: store}
}

// History returns the stored window for a conversation id, oldest first.
func (s *ConversationService) History(ctx context.Context, id string) ([]domain.Turn, error) {
	return s.store.Get(ctx, id)
}

// Clear drops a conversation window.
func (s *ConversationService) Clear(ctx context.Context, id string) error {
	return s.store.Clear(ctx, id)
}
