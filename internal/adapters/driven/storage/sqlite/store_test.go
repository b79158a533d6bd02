package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// createTestDocument saves a document so chunks can reference it.
func createTestDocument(t *testing.T, store *Store, id, uri string) *domain.Document {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	doc := &domain.Document{
		ID:        id,
		URI:       uri,
		Title:     "Document " + id,
		Content:   "content of " + id,
		Excerpt:   "content",
		Metadata:  map[string]any{"format": "html"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.DocumentStore().SaveDocument(context.Background(), doc))
	return doc
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseName), store.Path())
	assert.FileExists(t, store.Path())
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "path")
	store, err := NewStore(nested)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nested)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	for _, table := range []string{"documents", "chunks"} {
		var exists int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.Equal(t, 1, exists, "table %s should exist", table)
	}
}

func TestNewStore_MigrationIdempotency(t *testing.T) {
	dir := t.TempDir()
	first, err := NewStore(dir)
	require.NoError(t, err)
	createTestDocument(t, first, "doc-1", "/a.html")
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	doc, err := second.DocumentStore().GetDocument(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "/a.html", doc.URI)
}

func TestNewStore_Pragmas(t *testing.T) {
	store := setupTestStore(t)

	var fk int
	require.NoError(t, store.db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, store.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

// ==================== Document Store Tests ====================

func TestDocumentStore_SaveAndGetDocument(t *testing.T) {
	store := setupTestStore(t)
	want := createTestDocument(t, store, "doc-1", "/docs/a.html")

	got, err := store.DocumentStore().GetDocument(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.URI, got.URI)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Content, got.Content)
	assert.Equal(t, want.Excerpt, got.Excerpt)
	assert.Equal(t, "html", got.Metadata["format"])
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestDocumentStore_SaveDocument_Update(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	doc := createTestDocument(t, store, "doc-1", "/docs/a.html")

	created := doc.CreatedAt
	doc.Title = "Renamed"
	doc.CreatedAt = created.Add(time.Hour)
	doc.UpdatedAt = created.Add(2 * time.Hour)
	require.NoError(t, store.DocumentStore().SaveDocument(ctx, doc))

	got, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.True(t, created.Equal(got.CreatedAt), "created_at is not overwritten")
	assert.True(t, doc.UpdatedAt.Equal(got.UpdatedAt))
}

func TestDocumentStore_GetDocument_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.DocumentStore().GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_EmptyMetadata(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, store.DocumentStore().SaveDocument(ctx, &domain.Document{
		ID: "doc-1", URI: "/a.html", CreatedAt: now, UpdatedAt: now,
	}))

	got, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, got.Metadata)
}

func TestDocumentStore_ListDocuments(t *testing.T) {
	store := setupTestStore(t)
	createTestDocument(t, store, "doc-c", "/docs/c.html")
	createTestDocument(t, store, "doc-a", "/docs/a.html")
	createTestDocument(t, store, "doc-b", "/docs/b.html")

	docs, err := store.DocumentStore().ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "/docs/a.html", docs[0].URI)
	assert.Equal(t, "/docs/b.html", docs[1].URI)
	assert.Equal(t, "/docs/c.html", docs[2].URI)
}

func TestDocumentStore_ListDocuments_Empty(t *testing.T) {
	store := setupTestStore(t)

	docs, err := store.DocumentStore().ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func testChunks(docID string, n int) []domain.Chunk {
	chunks := make([]domain.Chunk, n)
	for i := range chunks {
		chunks[i] = domain.Chunk{
			ID:         fmt.Sprintf("%s-chunk-%d", docID, i),
			DocumentID: docID,
			Content:    fmt.Sprintf("part %d", i),
			Position:   i,
			Metadata:   map[string]any{"start": i * 10},
		}
	}
	return chunks
}

func TestDocumentStore_SaveAndGetChunks(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestDocument(t, store, "doc-1", "/a.html")

	chunks := testChunks("doc-1", 3)
	// Saved out of order, read back by position.
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, []domain.Chunk{chunks[2], chunks[0], chunks[1]}))

	got, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, c := range got {
		assert.Equal(t, i, c.Position)
		assert.Equal(t, chunks[i].Content, c.Content)
		assert.InDelta(t, float64(i*10), c.Metadata["start"], 0)
	}
}

func TestDocumentStore_SaveChunks_Replaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestDocument(t, store, "doc-1", "/a.html")

	require.NoError(t, store.DocumentStore().SaveChunks(ctx, testChunks("doc-1", 4)))
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, testChunks("doc-1", 2)))

	got, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDocumentStore_SaveChunks_Empty(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.DocumentStore().SaveChunks(context.Background(), nil))
}

func TestDocumentStore_SaveChunks_UnknownDocument(t *testing.T) {
	store := setupTestStore(t)

	err := store.DocumentStore().SaveChunks(context.Background(), testChunks("missing", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving chunk")
}

func TestDocumentStore_ReplaceDocument(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	doc := createTestDocument(t, store, "doc-1", "/a.html")
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, testChunks("doc-1", 4)))

	updated := *doc
	updated.Title = "Rewritten"
	require.NoError(t, store.DocumentStore().ReplaceDocument(ctx, &updated, testChunks("doc-1", 2)))

	got, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Rewritten", got.Title)
	chunks, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, chunks, 2)

	require.NoError(t, store.DocumentStore().ReplaceDocument(ctx, &updated, nil))
	chunks, err = store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestDocumentStore_ReplaceDocument_RollsBack(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	doc := createTestDocument(t, store, "doc-1", "/a.html")
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, testChunks("doc-1", 3)))

	updated := *doc
	updated.Title = "Rewritten"
	// A chunk of an unknown document fails the foreign key.
	chunks := append(testChunks("doc-1", 1), testChunks("missing", 1)...)
	err := store.DocumentStore().ReplaceDocument(ctx, &updated, chunks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving chunk")

	got, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)
	kept, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, kept, 3)
}

func TestDocumentStore_DeleteDocument_CascadesChunks(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestDocument(t, store, "doc-1", "/a.html")
	createTestDocument(t, store, "doc-2", "/b.html")
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, testChunks("doc-1", 2)))
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, testChunks("doc-2", 2)))

	require.NoError(t, store.DocumentStore().DeleteDocument(ctx, "doc-1"))

	_, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	chunks, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, chunks)

	chunks, err = store.DocumentStore().GetChunks(ctx, "doc-2")
	require.NoError(t, err)
	assert.Len(t, chunks, 2)
}

func TestDocumentStore_DeleteDocument_NonExistent(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.DocumentStore().DeleteDocument(context.Background(), "missing"))
}

func TestDocumentStore_CancelledContext(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.DocumentStore().ListDocuments(ctx)
	assert.Error(t, err)
	assert.Error(t, store.DocumentStore().SaveChunks(ctx, testChunks("doc-1", 1)))
	assert.Error(t, store.DocumentStore().ReplaceDocument(ctx, &domain.Document{ID: "doc-1"}, nil))
}

func TestDocumentStore_ClosedDatabase(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	ctx := context.Background()
	err = store.DocumentStore().SaveDocument(ctx, &domain.Document{ID: "x", URI: "/x"})
	assert.Contains(t, err.Error(), "saving document")
	_, err = store.DocumentStore().ListDocuments(ctx)
	assert.Contains(t, err.Error(), "querying documents")
	err = store.DocumentStore().DeleteDocument(ctx, "x")
	assert.Contains(t, err.Error(), "deleting document")
}

func TestDocumentStore_InvalidMetadata(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestDocument(t, store, "doc-1", "/a.html")

	_, err := store.db.Exec("UPDATE documents SET metadata = 'not json' WHERE id = 'doc-1'")
	require.NoError(t, err)

	_, err = store.DocumentStore().GetDocument(ctx, "doc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling metadata")
}

func TestDocumentStore_UnmarshalableMetadata(t *testing.T) {
	store := setupTestStore(t)
	err := store.DocumentStore().SaveDocument(context.Background(), &domain.Document{
		ID: "doc-1", URI: "/a.html", Metadata: map[string]any{"bad": make(chan int)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshalling metadata")
}

func TestStore_ConcurrentWrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("doc-%d", i)
			now := time.Now().UTC()
			assert.NoError(t, store.DocumentStore().SaveDocument(ctx, &domain.Document{
				ID: id, URI: "/" + id + ".html", CreatedAt: now, UpdatedAt: now,
			}))
			assert.NoError(t, store.DocumentStore().SaveChunks(ctx, testChunks(id, 3)))
		}()
	}
	wg.Wait()

	docs, err := store.DocumentStore().ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 10)
}
