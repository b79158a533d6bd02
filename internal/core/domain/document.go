package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document is an indexed page after normalisation and post-processing.
type Document struct {
	// ID is DocumentID(URI), stable across re-indexing.
	ID    string
	URI   string
	Title string

	// Content is the full extracted text; chunks are cut from it.
	Content string
	Excerpt string

	Metadata map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Chunk is a window of a document's Content.
type Chunk struct {
	ID         string
	DocumentID string
	Content    string

	// Position counts from zero in document order.
	Position int
	Metadata map[string]any
}

// DocumentID derives a name-based UUID from uri.
func DocumentID(uri string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(uri)).String()
}

// ChunkID derives the ID of the chunk at position in a document.
func ChunkID(documentID string, position int) string {
	return DocumentID(fmt.Sprintf("%s#%d", documentID, position))
}
