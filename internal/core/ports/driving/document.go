package driving

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
)

// IngestInput carries an upload into the document service.
type IngestInput struct {
	// Filename is the original file name (required).
	Filename string

	// Title is the display title; defaults to the filename.
	Title string

	// Description is optional free-form text.
	Description string

	// UserID identifies the uploader (opaque).
	UserID string

	// Content is the raw file bytes.
	Content []byte
}

// DocumentService manages the document lifecycle: ingest, list, delete.
type DocumentService interface {
	// Ingest normalises, chunks and indexes one upload.
	// Parse failures degrade to a placeholder chunk; they never abort
	// ingestion.
	Ingest(ctx context.Context, in IngestInput) (*domain.Document, error)

	// Get retrieves a document's metadata by id.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all ingested documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document's metadata and all of its chunks.
	Delete(ctx context.Context, id string) error
}
