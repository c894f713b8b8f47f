package driven

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
)

// ChunkStore holds every chunk across all uploaded documents.
// It is append-only except for bulk removal by source id: single chunks are
// never deleted. Within one document the stored order preserves ordinals;
// no ordering is guaranteed across documents.
type ChunkStore interface {
	// Add appends chunks to the store.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// All returns every stored chunk in store order.
	All(ctx context.Context) ([]domain.Chunk, error)

	// RemoveBySource deletes all chunks belonging to a source id and
	// returns the number removed.
	RemoveBySource(ctx context.Context, sourceID string) (int, error)

	// Count returns the total number of stored chunks.
	Count(ctx context.Context) (int, error)
}
