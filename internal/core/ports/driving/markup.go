package driving

import "github.com/custodia-labs/hyperless/internal/markup"

// MarkupService parses and transforms HTML using the configured parser
// options. It is shared by the CLI, MCP server and TUI.
type MarkupService interface {
	// Parse builds a node tree from html.
	Parse(html string) *markup.Node

	// Render parses html and writes it back as normalised markup.
	Render(html string, opts markup.RenderOptions) string

	// Text returns the readable text of html.
	Text(html string) string

	// Excerpt returns a short excerpt of the text of html.
	Excerpt(html string, req ExcerptRequest) string

	// Attributes lists the attributes of every element named tag, or of
	// every element when tag is empty.
	Attributes(html, tag string) []ElementAttributes
}

// ExcerptRequest overrides the configured excerpt settings.
// Zero values keep the configured setting.
type ExcerptRequest struct {
	// MaxLength is the target length in characters.
	MaxLength int

	// Suffix replaces the configured suffix when not nil.
	Suffix *string
}

// Attribute is one name and decoded value pair.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ElementAttributes are the attributes of one element.
type ElementAttributes struct {
	// Tag is the lower-cased tag name.
	Tag string `json:"tag"`

	// Path locates the element, e.g. "html > body > div[2]".
	Path string `json:"path"`

	// Attributes are in source order.
	Attributes []Attribute `json:"attributes"`

	// Error describes where attribute parsing stopped, if it did.
	Error string `json:"error,omitempty"`
}
