// Package extract turns HTML into plain text: readable text with the
// markup removed, and short excerpts of that text.
package extract

import (
	"strings"

	"github.com/custodia-labs/hyperless/internal/markup"
)

// quoteTags are wrapped in typographic quotation marks.
var quoteTags = markup.NewTagSet("blockquote", "q")

// removeTags are dropped together with their content.
var removeTags = markup.NewTagSet(
	"audio", "canvas", "figure", "form", "iframe", "picture", "pre",
	"script", "style", "table", "video",
)

// quoteStyles alternate with nesting depth.
var quoteStyles = [2][2]string{{"“", "”"}, {"‘", "’"}}

var inlineTags = markup.NewTagSet(markup.InlineTags()...)

// StripTags returns the text content of n with whitespace collapsed.
//
// Media, forms, tables and code blocks are replaced by a space. Block
// elements are separated by a space. Text inside <blockquote> and <q> is
// wrapped in quotation marks that alternate between double and single
// with each level of nesting. The tree is not modified.
func StripTags(n *markup.Node) string {
	return collapse(strip(n, 0))
}

// StripTagsHTML parses html with the default options and strips it.
func StripTagsHTML(html string) string {
	return StripTags(markup.Parse(html, nil))
}

func strip(n *markup.Node, style int) string {
	if n.Type() == markup.TextNode {
		return n.Raw()
	}
	if removeTags.Has(n.Tag()) {
		return " "
	}
	if quoteTags.Has(n.Tag()) {
		q := quoteStyles[style%2]
		return q[0] + collapse(stripChildren(n, style+1)) + q[1]
	}
	out := stripChildren(n, style)
	if !inlineTags.Has(n.Tag()) {
		out += " "
	}
	return out
}

func stripChildren(n *markup.Node, style int) string {
	var b strings.Builder
	for c := range n.Children() {
		b.WriteString(strip(c, style))
	}
	return b.String()
}

// collapse replaces whitespace runs with one space and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
