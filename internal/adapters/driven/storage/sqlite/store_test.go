package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStore_CreatesSchema(t *testing.T) {
	store := newTestStore(t)
	assert.NotEmpty(t, store.Path())

	// Migration is idempotent: reopening the same directory works
	again, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestStore_SaveAndGetDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := &domain.Document{
		ID:          "doc-1",
		Filename:    "handbook.md",
		Title:       "Handbook",
		Description: "Employee handbook",
		UserID:      "user-7",
		MIMEType:    "text/markdown",
		SizeBytes:   2048,
		ChunkCount:  3,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Handbook", got.Title)
	assert.Equal(t, "text/markdown", got.MIMEType)
	assert.Equal(t, int64(2048), got.SizeBytes)
	assert.Equal(t, 3, got.ChunkCount)
}

func TestStore_SaveDocumentUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := &domain.Document{ID: "doc-1", Filename: "a.txt", Title: "First"}
	require.NoError(t, store.SaveDocument(ctx, doc))

	doc.Title = "Updated"
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestStore_GetMissingDocument(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetDocument(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListDocumentsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "old", Filename: "old.txt", Title: "Old", CreatedAt: base.Add(-time.Hour),
	}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "new", Filename: "new.txt", Title: "New", CreatedAt: base,
	}))

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "new", docs[0].ID)
}

func TestStore_DeleteDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "doc-1", Filename: "a.txt", Title: "A"}))
	require.NoError(t, store.DeleteDocument(ctx, "doc-1"))

	_, err := store.GetDocument(ctx, "doc-1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, store.DeleteDocument(ctx, "doc-1"), domain.ErrNotFound)
}
