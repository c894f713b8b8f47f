package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley/internal/chunker"
	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driving"
	"github.com/parley-labs/parley/internal/normalisers"
)

// stubMetaStore records metadata operations.
type stubMetaStore struct {
	docs      map[string]*domain.Document
	saveErr   error
	deleteErr error
}

func newStubMetaStore() *stubMetaStore {
	return &stubMetaStore{docs: make(map[string]*domain.Document)}
}

func (s *stubMetaStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.docs[doc.ID] = doc
	return nil
}

func (s *stubMetaStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (s *stubMetaStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, *doc)
	}
	return out, nil
}

func (s *stubMetaStore) DeleteDocument(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func newTestDocumentService(chunks *stubChunkStore, meta *stubMetaStore) *DocumentService {
	return NewDocumentService(chunks, meta, normalisers.NewDefaultRegistry(), chunker.New())
}

func TestIngest_RequiresFilename(t *testing.T) {
	svc := newTestDocumentService(&stubChunkStore{}, newStubMetaStore())

	_, err := svc.Ingest(context.Background(), driving.IngestInput{Content: []byte("text")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngest_PlainText(t *testing.T) {
	chunks := &stubChunkStore{}
	meta := newStubMetaStore()
	svc := newTestDocumentService(chunks, meta)

	doc, err := svc.Ingest(context.Background(), driving.IngestInput{
		Filename: "notes.txt",
		Title:    "My Notes",
		UserID:   "user-7",
		Content:  []byte("Holiday allowance is 25 days."),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "My Notes", doc.Title)
	assert.Equal(t, "text/plain", doc.MIMEType)
	assert.Equal(t, int64(29), doc.SizeBytes)
	assert.Equal(t, 1, doc.ChunkCount)

	require.Len(t, chunks.chunks, 1)
	assert.Equal(t, doc.ID, chunks.chunks[0].SourceID)
	assert.Equal(t, 1, chunks.chunks[0].Ordinal)
	assert.Equal(t, "notes.txt", chunks.chunks[0].Filename)
	assert.Equal(t, "Holiday allowance is 25 days.", chunks.chunks[0].Text)

	// Metadata persisted under the same id
	_, ok := meta.docs[doc.ID]
	assert.True(t, ok)
}

func TestIngest_TitleDefaultsToFilename(t *testing.T) {
	svc := newTestDocumentService(&stubChunkStore{}, newStubMetaStore())

	doc, err := svc.Ingest(context.Background(), driving.IngestInput{
		Filename: "handbook.md",
		Content:  []byte("# Handbook"),
	})
	require.NoError(t, err)
	assert.Equal(t, "handbook.md", doc.Title)
}

func TestIngest_OrdinalsAreSequential(t *testing.T) {
	chunks := &stubChunkStore{}
	svc := NewDocumentService(chunks, newStubMetaStore(), normalisers.NewDefaultRegistry(),
		chunker.New(chunker.WithTargetSize(40), chunker.WithOverlap(10)))

	_, err := svc.Ingest(context.Background(), driving.IngestInput{
		Filename: "long.txt",
		Content: []byte("First paragraph with enough text here.\n\n" +
			"Second paragraph with enough text too.\n\n" +
			"Third paragraph rounding things off."),
	})
	require.NoError(t, err)

	require.Greater(t, len(chunks.chunks), 1)
	for i, c := range chunks.chunks {
		assert.Equal(t, i+1, c.Ordinal)
	}
}

func TestIngest_ParseFailureDegradesToPlaceholder(t *testing.T) {
	chunks := &stubChunkStore{}
	svc := newTestDocumentService(chunks, newStubMetaStore())

	// Invalid UTF-8 cannot be extracted as text
	doc, err := svc.Ingest(context.Background(), driving.IngestInput{
		Filename: "binary.txt",
		Content:  []byte{0xff, 0xfe, 0x00, 0x01},
	})
	require.NoError(t, err)

	require.Len(t, chunks.chunks, 1)
	assert.Contains(t, chunks.chunks[0].Text, `"binary.txt"`)
	assert.Contains(t, chunks.chunks[0].Text, "could not be extracted")
	assert.Equal(t, 1, doc.ChunkCount)
}

func TestIngest_EmptyDocumentGetsSentinelChunk(t *testing.T) {
	chunks := &stubChunkStore{}
	svc := newTestDocumentService(chunks, newStubMetaStore())

	doc, err := svc.Ingest(context.Background(), driving.IngestInput{
		Filename: "empty.txt",
		Content:  []byte("   \n\n  "),
	})
	require.NoError(t, err)

	require.Len(t, chunks.chunks, 1)
	assert.Equal(t, domain.EmptyDocumentMarker, chunks.chunks[0].Text)
	assert.Equal(t, 1, doc.ChunkCount)
}

func TestIngest_MetadataFailureIsBestEffort(t *testing.T) {
	chunks := &stubChunkStore{}
	meta := newStubMetaStore()
	meta.saveErr = errors.New("disk full")
	svc := newTestDocumentService(chunks, meta)

	doc, err := svc.Ingest(context.Background(), driving.IngestInput{
		Filename: "notes.txt",
		Content:  []byte("content"),
	})

	// Chunks are indexed even though the metadata write failed
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Len(t, chunks.chunks, 1)
}

func TestDelete_RemovesChunksAndMetadata(t *testing.T) {
	chunks := &stubChunkStore{}
	meta := newStubMetaStore()
	svc := newTestDocumentService(chunks, meta)

	doc, err := svc.Ingest(context.Background(), driving.IngestInput{
		Filename: "notes.txt",
		Content:  []byte("some content"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), doc.ID))
	assert.Empty(t, chunks.chunks)
	assert.Empty(t, meta.docs)
}

func TestDelete_UnknownID(t *testing.T) {
	svc := newTestDocumentService(&stubChunkStore{}, newStubMetaStore())

	err := svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_DanglingMetadataTolerated(t *testing.T) {
	chunks := &stubChunkStore{
		chunks: []domain.Chunk{{ID: "c1", SourceID: "doc-1"}},
	}
	meta := newStubMetaStore()
	meta.deleteErr = errors.New("db locked")
	svc := newTestDocumentService(chunks, meta)

	// Chunks were removed, so the metadata failure is only logged
	require.NoError(t, svc.Delete(context.Background(), "doc-1"))
	assert.Empty(t, chunks.chunks)
}

func TestGet_DelegatesToMetaStore(t *testing.T) {
	meta := newStubMetaStore()
	meta.docs["doc-1"] = &domain.Document{ID: "doc-1", Title: "Found"}
	svc := newTestDocumentService(&stubChunkStore{}, meta)

	doc, err := svc.Get(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Found", doc.Title)

	_, err = svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
