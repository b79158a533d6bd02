package driven

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// DocumentStore is the index of normalised documents and their chunks.
type DocumentStore interface {
	// SaveDocument inserts doc or replaces the document with the same ID.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks replaces, per document, all chunks of the documents
	// referenced in chunks.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// ReplaceDocument saves doc and replaces all of its chunks with
	// chunks as one operation. A failure leaves the stored version intact.
	ReplaceDocument(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) error

	// GetDocument fails with domain.ErrNotFound for unknown IDs.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetChunks lists a document's chunks by position. Unknown IDs yield
	// an empty list.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments lists every document ordered by URI.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
