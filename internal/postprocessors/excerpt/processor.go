// Package excerpt provides a processor that fills Document.Excerpt from the
// document text.
package excerpt

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/extract"
)

// Processor sets the document excerpt and passes chunks through unchanged.
// It implements the PostProcessor interface.
type Processor struct {
	opts extract.ExcerptOptions
}

// Option configures the excerpt processor.
type Option func(*Processor)

// WithMaxLength sets the target excerpt length in characters.
func WithMaxLength(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.opts.MaxLength = n
		}
	}
}

// WithSuffix sets the truncation marker.
func WithSuffix(suffix string) Option {
	return func(p *Processor) {
		p.opts.Suffix = suffix
	}
}

// WithEndChars sets the sentence terminators.
func WithEndChars(chars ...string) Option {
	return func(p *Processor) {
		if len(chars) > 0 {
			p.opts.EndChars = chars
		}
	}
}

// New creates a new excerpt processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{opts: extract.DefaultExcerptOptions()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "excerpt"
}

// Options returns the excerpt configuration in use.
func (p *Processor) Options() extract.ExcerptOptions {
	return p.opts
}

// Process sets doc.Excerpt. Document content is already plain text, so no
// parsing happens here.
func (p *Processor) Process(_ context.Context, doc *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	doc.Excerpt = extract.ExcerptText(doc.Content, p.opts)
	return chunks, nil
}
