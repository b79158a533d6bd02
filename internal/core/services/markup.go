package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/extract"
	"github.com/custodia-labs/hyperless/internal/logger"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// Ensure MarkupService implements the interface.
var _ driving.MarkupService = (*MarkupService)(nil)

// MarkupService parses and transforms HTML with the configured options.
type MarkupService struct {
	settings driving.SettingsService
}

// NewMarkupService creates a markup service reading its configuration
// from settings on every call.
func NewMarkupService(settings driving.SettingsService) *MarkupService {
	return &MarkupService{settings: settings}
}

// config returns the current parser options and excerpt settings. Invalid
// settings fall back to the defaults.
func (s *MarkupService) config() (*markup.Options, domain.ExcerptSettings) {
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("using default settings: %v", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}
	return parseOptions(settings), settings.Excerpt
}

// Parse builds a node tree from html.
func (s *MarkupService) Parse(html string) *markup.Node {
	opts, _ := s.config()
	return markup.Parse(html, opts)
}

// Render parses html and serialises the tree.
func (s *MarkupService) Render(html string, opts markup.RenderOptions) string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = s.Parse(html).Render(&b, opts)
	return b.String()
}

// Text returns the readable text of html.
func (s *MarkupService) Text(html string) string {
	return extract.StripTags(s.Parse(html))
}

// Excerpt returns a short excerpt of the text of html.
func (s *MarkupService) Excerpt(html string, req driving.ExcerptRequest) string {
	parse, settings := s.config()
	opts := extract.ExcerptOptions{
		MaxLength: settings.MaxLength,
		Suffix:    settings.Suffix,
		EndChars:  settings.EndChars,
		Parse:     parse,
	}
	if req.MaxLength > 0 {
		opts.MaxLength = req.MaxLength
	}
	if req.Suffix != nil {
		opts.Suffix = *req.Suffix
	}
	return extract.Excerpt(html, opts)
}

// Attributes lists element attributes in document order.
func (s *MarkupService) Attributes(html, tag string) []driving.ElementAttributes {
	tag = strings.ToLower(tag)
	out := []driving.ElementAttributes{}

	s.Parse(html).Traverse(func(n *markup.Node) bool {
		switch n.Type() {
		case markup.ElementNode, markup.VoidNode, markup.OpaqueNode:
		default:
			return true
		}
		if tag != "" && n.Tag() != tag {
			return true
		}

		attrs, err := n.ParseAttributes()
		element := driving.ElementAttributes{
			Tag:        n.Tag(),
			Path:       elementPath(n),
			Attributes: []driving.Attribute{},
		}
		for name, value := range attrs.All() {
			element.Attributes = append(element.Attributes, driving.Attribute{Name: name, Value: value})
		}
		if err != nil {
			element.Error = err.Error()
		}
		out = append(out, element)
		return true
	})
	return out
}

// elementPath names n by its ancestors from the root, e.g.
// "html > body > div[2]". An index is added when siblings share the tag.
func elementPath(n *markup.Node) string {
	var parts []string
	for node := n; node != nil; node = node.Parent() {
		parts = append(parts, pathSegment(node))
	}
	slices.Reverse(parts)
	return strings.Join(parts, " > ")
}

func pathSegment(n *markup.Node) string {
	parent := n.Parent()
	if parent == nil {
		return n.Tag()
	}
	index, count := 0, 0
	for sibling := range parent.Children() {
		if sibling.Tag() != n.Tag() || !isElementLike(sibling) {
			continue
		}
		count++
		if sibling == n {
			index = count
		}
	}
	if count > 1 {
		return fmt.Sprintf("%s[%d]", n.Tag(), index)
	}
	return n.Tag()
}

// isElementLike reports whether n is a tag that can appear in a path.
// Strays carry their closer's tag name and comments none.
func isElementLike(n *markup.Node) bool {
	switch n.Type() {
	case markup.TextNode, markup.CommentNode, markup.StrayNode:
		return false
	}
	return true
}
