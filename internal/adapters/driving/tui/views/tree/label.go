package tree

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/hyperless/internal/markup"
)

// previewLength is the number of characters of text shown in a label.
const previewLength = 40

// Label describes a node on one line: its type and tag name, or a quoted
// preview of its text.
func Label(n *markup.Node) string {
	switch n.Type() {
	case markup.TextNode, markup.CommentNode:
		return n.Type().String() + " " + Preview(n.Raw(), previewLength)
	case markup.StrayNode:
		return n.Type().String() + " " + n.Raw()
	default:
		return n.Type().String() + " " + n.Tag()
	}
}

// Preview collapses whitespace in s and quotes at most max characters of it.
func Preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > max {
		s = string(r[:max-1]) + "…"
	}
	return strconv.Quote(s)
}

// IsBlank reports whether n is a text node holding only whitespace.
func IsBlank(n *markup.Node) bool {
	return n.Type() == markup.TextNode && strings.TrimSpace(n.Raw()) == ""
}
