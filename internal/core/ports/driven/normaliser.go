package driven

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// Normaliser turns the raw bytes of one format into document content.
type Normaliser interface {
	SupportedMIMETypes() []string

	// Priority orders normalisers claiming the same MIME type; the
	// highest wins. Fallbacks such as plain text use a low value.
	Priority() int

	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult carries the document a normaliser produced. Its
// Excerpt and chunks are filled in later by the post-processors.
type NormaliseResult struct {
	Document domain.Document
}
