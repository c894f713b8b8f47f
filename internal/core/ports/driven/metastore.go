package driven

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
)

// MetadataStore persists document metadata.
// Backed by SQLite; ingestion falls back to an in-memory implementation
// when the database cannot be opened, trading durability for availability.
type MetadataStore interface {
	// SaveDocument stores or updates a document's metadata.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by id.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents, newest first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document's metadata.
	DeleteDocument(ctx context.Context, id string) error
}
