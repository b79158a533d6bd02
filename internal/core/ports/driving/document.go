package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// DocumentService indexes HTML files and manages the stored documents.
type DocumentService interface {
	// Index reads a file, normalises it and stores the document and its
	// chunks. Re-indexing a path replaces the previous document.
	Index(ctx context.Context, path string) (*domain.Document, error)

	// IndexContent indexes content that was not read from disk.
	IndexContent(ctx context.Context, uri, mimeType string, content []byte) (*domain.Document, error)

	// IndexAll indexes path, or every indexable file beneath it when it is
	// a directory. report is called once per file. Failures of single
	// files are reported, not returned.
	IndexAll(ctx context.Context, path string, report func(IndexResult)) error

	// Remove deletes the document indexed from path.
	Remove(ctx context.Context, path string) error

	// List returns all indexed documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// GetContent returns the stored text of a document.
	GetContent(ctx context.Context, documentID string) (string, error)

	// GetDetails returns metadata for display.
	GetDetails(ctx context.Context, documentID string) (*DocumentDetails, error)

	// Delete removes a document and its chunks.
	Delete(ctx context.Context, documentID string) error
}

// IndexResult is the outcome of indexing one file.
type IndexResult struct {
	// Path is the file that was indexed.
	Path string

	// Document is the stored document, nil on failure.
	Document *domain.Document

	// Err is the failure, if any.
	Err error
}

// DocumentDetails provides a standardised view of document metadata.
type DocumentDetails struct {
	// ID is the unique document identifier.
	ID string

	// Title is the document title.
	Title string

	// URI is the original location.
	URI string

	// Excerpt is the stored excerpt.
	Excerpt string

	// ChunkCount is the number of chunks.
	ChunkCount int

	// CreatedAt is when the document was first indexed.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time

	// Metadata contains flattened key-value pairs for display.
	Metadata map[string]string
}
