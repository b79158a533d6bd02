package driven

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// FileWatcher reports changes to HTML files.
type FileWatcher interface {
	// Watch starts watching paths, which may be files or directories.
	// Changes are delivered on the returned channel, which is closed
	// when ctx is cancelled or Close is called.
	Watch(ctx context.Context, paths ...string) (<-chan domain.FileChange, error)

	// Close stops watching and releases resources.
	Close() error
}
