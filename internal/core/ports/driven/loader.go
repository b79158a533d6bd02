package driven

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// DocumentLoader reads documents from storage outside the index.
type DocumentLoader interface {
	// Load reads the file at path. The returned document's URI is the
	// absolute path and its MIME type is detected from the extension.
	Load(ctx context.Context, path string) (*domain.RawDocument, error)

	// Files returns the indexable files under path in lexical order.
	// A file path is returned as is. Hidden files and directories are
	// skipped.
	Files(ctx context.Context, path string) ([]string, error)
}
