package driven

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// PostProcessor is one stage after normalisation. It may edit doc in
// place and returns the chunks for the next stage.
type PostProcessor interface {
	Name() string
	Process(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error)
}

// PostProcessorPipeline runs the configured stages in order, starting
// from no chunks.
type PostProcessorPipeline interface {
	Process(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error)
}
