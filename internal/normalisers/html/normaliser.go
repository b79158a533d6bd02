package html

import (
	"context"
	"html"
	"maps"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/extract"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// doctype matches a leading document type declaration, which the parser
// keeps as text.
var doctype = regexp.MustCompile(`(?i)^\s*<!doctype[^>]*>`)

// dropTags hold no readable body text.
var dropTags = []string{"head", "title", "noscript", "svg", "template", "math", "object"}

// Normaliser handles HTML documents.
type Normaliser struct {
	opts *markup.Options
	now  func() time.Time
}

// Option configures the HTML normaliser.
type Option func(*Normaliser)

// WithParseOptions sets the parser configuration. Nil keeps the defaults.
func WithParseOptions(opts *markup.Options) Option {
	return func(n *Normaliser) {
		if opts != nil {
			n.opts = opts
		}
	}
}

// New creates a new HTML normaliser.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{
		opts: markup.DefaultOptions(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts an HTML document to a normalised document.
// The Content field contains the text with HTML tags stripped.
// Excerpts and chunking are handled by the PostProcessor pipeline.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := doctype.ReplaceAllString(string(raw.Content), "")
	root := markup.Parse(content, n.opts)
	title := extractTitle(root, raw.URI)

	for _, node := range root.FindAll(markup.HasTag(dropTags...)) {
		node.Detach()
	}

	now := n.now()
	doc := domain.Document{
		ID:        domain.DocumentID(raw.URI),
		URI:       raw.URI,
		Title:     title,
		Content:   cleanText(extract.StripTags(root)),
		Metadata:  maps.Clone(raw.Metadata),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Add MIME type and format info to metadata
	if doc.Metadata == nil {
		doc.Metadata = make(map[string]any)
	}
	doc.Metadata["mime_type"] = raw.MIMEType
	doc.Metadata["format"] = "html"

	return &driven.NormaliseResult{
		Document: doc,
	}, nil
}

// extractTitle takes the first <title> element's text, falling back to the
// filename.
func extractTitle(root *markup.Node, uri string) string {
	if node := root.Find(markup.HasTag("title")); node != nil {
		if title := cleanText(node.Text()); title != "" {
			return title
		}
	}

	filename := filepath.Base(uri)
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

// cleanText decodes entities, composes Unicode to NFC and collapses
// whitespace.
func cleanText(s string) string {
	s = norm.NFC.String(html.UnescapeString(s))
	return strings.Join(strings.Fields(s), " ")
}
