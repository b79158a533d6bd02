// Package chunker provides a fixed-size text chunking processor.
package chunker

import (
	"context"
	"strings"
	"unicode"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Processor splits document content into chunks of at most chunkSize
// characters, breaking at whitespace where possible.
// It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Ensure overlap doesn't exceed chunk size
	if p.overlap >= p.chunkSize {
		p.overlap = p.chunkSize / 4
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document content into chunks.
// Input chunks are ignored; this processor creates new chunks from document content.
// Chunk IDs derive from the document ID and position, so re-indexing an
// unchanged document yields the same IDs.
func (p *Processor) Process(ctx context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	if strings.TrimSpace(doc.Content) == "" {
		return nil, nil
	}

	runes := []rune(doc.Content)
	n := len(runes)
	chunks := make([]domain.Chunk, 0, n/(p.chunkSize-p.overlap)+1)

	start := skipSpace(runes, 0)
	for start < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := min(start+p.chunkSize, n)
		if end < n {
			if cut := lastSpace(runes, start, end); cut > start {
				end = cut
			}
		}

		if text := strings.TrimSpace(string(runes[start:end])); text != "" {
			position := len(chunks)
			chunks = append(chunks, domain.Chunk{
				ID:         domain.ChunkID(doc.ID, position),
				DocumentID: doc.ID,
				Content:    text,
				Position:   position,
				Metadata: map[string]any{
					"start": start,
					"end":   end,
				},
			})
		}

		if end >= n {
			break
		}
		start = p.nextStart(runes, start, end)
	}

	return chunks, nil
}

// nextStart returns where the chunk after runes[start:end] begins: overlap
// characters before end, moved forward to the next word when that stays
// inside the previous chunk.
func (p *Processor) nextStart(runes []rune, start, end int) int {
	next := end - p.overlap
	if next <= start {
		return skipSpace(runes, end)
	}
	if !unicode.IsSpace(runes[next-1]) {
		aligned := next
		for aligned < end && !unicode.IsSpace(runes[aligned]) {
			aligned++
		}
		if aligned < end {
			next = aligned
		}
	}
	return skipSpace(runes, next)
}

// lastSpace returns the index of the last whitespace in runes(start, end],
// or -1.
func lastSpace(runes []rune, start, end int) int {
	for i := end; i > start; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}

func skipSpace(runes []rune, i int) int {
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
