package markup

import (
	"bufio"
	"io"
	"strings"
)

// RenderOptions controls which node types produce output.
type RenderOptions struct {
	// Comments writes COMMENT nodes verbatim.
	Comments bool
	// Strays writes unmatched closing tags verbatim.
	Strays bool
}

// String renders the node and its descendants as normalised HTML, without
// comments or stray closing tags.
func (n *Node) String() string {
	var b strings.Builder
	_ = n.Render(&b, RenderOptions{})
	return b.String()
}

type renderFrame struct {
	node  *Node
	close bool
}

// Render writes the node and its descendants to w.
//
// Opening tags are rebuilt from the lower-cased tag name and the parsed
// attributes, so output is not byte-identical to the source. Text is
// written verbatim.
func (n *Node) Render(w io.Writer, opts RenderOptions) error {
	bw := bufio.NewWriter(w)
	stack := []renderFrame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := f.node
		if f.close {
			writeClose(bw, node.tag)
			continue
		}
		switch node.typ {
		case TextNode:
			bw.WriteString(node.raw)
			continue
		case CommentNode:
			if opts.Comments {
				bw.WriteString(node.raw)
			}
			continue
		case StrayNode:
			if opts.Strays {
				bw.WriteString(node.raw)
			}
			continue
		case VoidNode:
			writeOpen(bw, node, strings.HasSuffix(node.raw, "/>"))
			continue
		case ElementNode:
			writeOpen(bw, node, false)
			stack = append(stack, renderFrame{node: node, close: true})
		case OpaqueNode:
			writeOpen(bw, node, false)
			if node.closed {
				stack = append(stack, renderFrame{node: node, close: true})
			}
		}
		for c := node.tail; c != nil; c = c.prev {
			stack = append(stack, renderFrame{node: c})
		}
	}
	return bw.Flush()
}

func writeOpen(w *bufio.Writer, n *Node, selfClosing bool) {
	w.WriteByte('<')
	w.WriteString(n.tag)
	if attrs := n.Attributes(); attrs.Len() > 0 {
		w.WriteByte(' ')
		w.WriteString(attrs.String())
	}
	if selfClosing {
		w.WriteByte('/')
	}
	w.WriteByte('>')
}

func writeClose(w *bufio.Writer, tag string) {
	w.WriteString("</")
	w.WriteString(tag)
	w.WriteByte('>')
}
