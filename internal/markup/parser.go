package markup

import (
	"regexp"
	"strings"
)

var (
	// tagPattern matches a comment or any opening, closing or
	// self-closing tag at the start of the input. Group 1 is the tag
	// name and group 2 the attribute text.
	tagPattern = regexp.MustCompile(`^(?:<!--[\s\S]*?-->|</?([a-zA-Z][\w:-]*)([^>]*)/?>)`)

	// customName matches a custom element name such as <my-element>.
	customName = regexp.MustCompile(`[a-z]\w*-\w+`)
)

type parseState int

const (
	stateData parseState = iota
	stateRawText
)

type treeBuilder struct {
	opts   *Options
	root   *Node
	parent *Node
	state  parseState
}

// Parse builds a node tree from html. A nil opts uses DefaultOptions.
//
// Parse never fails. Closing tags without an open element become STRAY
// nodes, a '<' that does not start a tag is kept as text and opaque
// content without a closing tag runs to the end of the input. Unclosed
// <p> and <li> elements are closed the way browsers close them.
func Parse(html string, opts *Options) *Node {
	if opts == nil {
		opts = DefaultOptions()
	}
	root := NewRoot(opts.RootTag)
	b := &treeBuilder{opts: opts, root: root, parent: root}

	offset := strings.IndexByte(html, '<')
	for offset >= 0 && offset < len(html)-2 {
		if offset > 0 {
			b.text(html[:offset])
			html = html[offset:]
		}
		m := tagPattern.FindStringSubmatchIndex(html)
		if m == nil {
			// Not a tag: the '<' stays in the text before the next one.
			offset = strings.IndexByte(html[1:], '<')
			if offset >= 0 {
				offset++
			}
			continue
		}
		token := html[:m[1]]
		name := ""
		if m[2] >= 0 {
			name = strings.ToLower(html[m[2]:m[3]])
		}
		b.token(token, name)
		html = html[len(token):]
		offset = strings.IndexByte(html, '<')
	}
	if html != "" {
		b.text(html)
	}
	return root
}

// text adds literal text at the current position.
func (b *treeBuilder) text(s string) {
	if b.state == stateRawText {
		b.rawText(s)
		return
	}
	NewNode(b.parent, TextNode, s, "")
}

// rawText extends the content of the open opaque element.
func (b *treeBuilder) rawText(s string) {
	if c := b.parent.head; c != nil {
		c.raw += s
		return
	}
	NewNode(b.parent, TextNode, s, "")
}

func (b *treeBuilder) token(token, name string) {
	switch {
	case b.state == stateRawText:
		if name == b.parent.tag && strings.HasPrefix(token, "</") {
			b.parent.closed = true
			b.parent = b.parent.parent
			b.state = stateData
			return
		}
		b.rawText(token)

	case strings.HasPrefix(token, "<!--"):
		NewNode(b.parent, CommentNode, token, "")

	case b.opts.VoidTags.Has(name) || strings.HasSuffix(token, "/>"):
		b.closeParagraph(name)
		NewNode(b.parent, VoidNode, token, name)

	case strings.HasPrefix(token, "</"):
		b.closeParagraph(name)
		if b.parent.parent == nil {
			NewNode(b.parent, StrayNode, token, name)
			return
		}
		b.parent = b.parent.parent

	case b.opts.OpaqueTags.Has(name):
		node := NewNode(b.parent, OpaqueNode, token, name)
		NewNode(node, TextNode, "", "")
		b.parent = node
		b.state = stateRawText

	default:
		node := NewNode(nil, ElementNode, token, name)
		if name == "li" && b.parent.tag == "li" &&
			b.parent.parent != nil && listTags[b.parent.parent.tag] {
			b.parent = b.parent.parent
		}
		if !b.closeParagraph(name) && name == "p" && b.parent.tag == "p" {
			b.ascend()
		}
		b.parent.Append(node)
		b.parent = node
	}
}

// closeParagraph ascends out of an unclosed <p> when next cannot be
// nested in it. It reports whether it did.
func (b *treeBuilder) closeParagraph(next string) bool {
	if customName.MatchString(next) {
		return false
	}
	if next == "p" || b.parent.tag != "p" || b.opts.InlineTags.Has(next) {
		return false
	}
	b.ascend()
	return true
}

func (b *treeBuilder) ascend() {
	if b.parent.parent != nil {
		b.parent = b.parent.parent
	}
}
