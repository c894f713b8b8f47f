package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parley-labs/parley/internal/chunker"
	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driven"
	"github.com/parley-labs/parley/internal/core/ports/driving"
	"github.com/parley-labs/parley/internal/logger"
	"github.com/parley-labs/parley/internal/normalisers"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService handles the document lifecycle: normalise, chunk, index
// and delete.
type DocumentService struct {
	chunkStore driven.ChunkStore
	metaStore  driven.MetadataStore
	registry   *normalisers.Registry
	chunker    *chunker.Chunker
}

// NewDocumentService creates a document service.
func NewDocumentService(
	chunkStore driven.ChunkStore,
	metaStore driven.MetadataStore,
	registry *normalisers.Registry,
	c *chunker.Chunker,
) *DocumentService {
	return &DocumentService{
		chunkStore: chunkStore,
		metaStore:  metaStore,
		registry:   registry,
		chunker:    c,
	}
}

// Ingest normalises, chunks and indexes one upload.
//
// Content extraction failures never abort ingestion: the chunk content
// degrades to a placeholder naming the file, its type and size. Every
// processed document yields at least one chunk.
func (s *DocumentService) Ingest(ctx context.Context, in driving.IngestInput) (*domain.Document, error) {
	if in.Filename == "" {
		return nil, fmt.Errorf("%w: filename required", domain.ErrInvalidInput)
	}

	logger.Section("Document Ingestion")
	logger.Debug("Ingesting %q (%d bytes)", in.Filename, len(in.Content))

	raw := &domain.RawDocument{
		Filename: in.Filename,
		MIMEType: normalisers.DetectMIMEType(in.Filename),
		Content:  in.Content,
	}

	text := s.registry.Extract(ctx, raw)
	pieces := s.chunker.Split(text)
	logger.Debug("Chunked into %d pieces", len(pieces))

	sourceID := uuid.New().String()
	chunks := make([]domain.Chunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = domain.Chunk{
			ID:       uuid.New().String(),
			SourceID: sourceID,
			Ordinal:  i + 1,
			Filename: in.Filename,
			Text:     piece,
		}
	}

	if err := s.chunkStore.Add(ctx, chunks); err != nil {
		return nil, fmt.Errorf("index chunks: %w", err)
	}

	title := in.Title
	if title == "" {
		title = in.Filename
	}

	doc := &domain.Document{
		ID:          sourceID,
		Filename:    in.Filename,
		Title:       title,
		Description: in.Description,
		UserID:      in.UserID,
		MIMEType:    raw.MIMEType,
		SizeBytes:   int64(len(in.Content)),
		ChunkCount:  len(chunks),
		CreatedAt:   time.Now().UTC(),
	}

	// Metadata persistence is best-effort: the chunks are already
	// searchable and a metadata write failure must not undo that.
	if err := s.metaStore.SaveDocument(ctx, doc); err != nil {
		logger.Warn("Saving metadata for %q failed: %v", in.Filename, err)
	}

	logger.Info("Ingested %q as %s (%d chunks)", in.Filename, sourceID, len(chunks))
	return doc, nil
}

// Get retrieves a document's metadata by id.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.metaStore.GetDocument(ctx, id)
}

// List returns all ingested documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.metaStore.ListDocuments(ctx)
}

// Delete removes a document's metadata and all of its chunks in bulk.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	removed, err := s.chunkStore.RemoveBySource(ctx, id)
	if err != nil {
		return fmt.Errorf("remove chunks: %w", err)
	}

	if err := s.metaStore.DeleteDocument(ctx, id); err != nil {
		if removed == 0 {
			return err
		}
		// Chunks are gone; a dangling metadata row is the lesser evil.
		logger.Warn("Deleting metadata for %s failed: %v", id, err)
	}

	logger.Info("Deleted document %s (%d chunks)", id, removed)
	return nil
}
