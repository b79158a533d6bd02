// Package plaintext provides the fallback Normaliser for plain text files.
package plaintext

import (
	"context"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
)

var _ driven.Normaliser = (*Normaliser)(nil)

// priority ranks below every format-specific normaliser.
const priority = 5

var (
	lineEndings   = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	titleSpelling = strings.NewReplacer("_", " ", "-", " ")
)

// Normaliser stores text files as they are, apart from line endings and
// Unicode composition.
type Normaliser struct {
	now func() time.Time
}

// New creates a plain text normaliser.
func New() *Normaliser {
	return &Normaliser{now: time.Now}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return priority
}

// Normalise keeps the text verbatim except for a leading byte order mark,
// CR and CRLF line endings and surrounding blank space. The title comes
// from the "title" metadata entry or the file name.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	text := strings.TrimPrefix(string(raw.Content), "\ufeff")
	text = strings.TrimSpace(lineEndings.Replace(norm.NFC.String(text)))

	metadata := maps.Clone(raw.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["mime_type"] = raw.MIMEType
	metadata["format"] = "text"

	title, _ := raw.Metadata["title"].(string)
	if title == "" {
		title = titleFromPath(raw.URI)
	}

	now := n.now()
	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:        domain.DocumentID(raw.URI),
			URI:       raw.URI,
			Title:     title,
			Content:   text,
			Metadata:  metadata,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

// titleFromPath turns "release_notes-2026.txt" into "release notes 2026".
func titleFromPath(uri string) string {
	name := filepath.Base(uri)
	return titleSpelling.Replace(strings.TrimSuffix(name, filepath.Ext(name)))
}
