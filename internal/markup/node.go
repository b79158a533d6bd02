package markup

import (
	"iter"
	"strings"

	"github.com/custodia-labs/hyperless/internal/logger"
)

var log = logger.For("markup")

// NodeType identifies what kind of markup a Node represents.
type NodeType int

const (
	// RootNode is the parentless node returned by Parse.
	RootNode NodeType = iota
	// ElementNode is an opening tag with children and a closing tag.
	ElementNode
	// VoidNode is a tag that cannot have children: a void element or a
	// self-closing tag.
	VoidNode
	// TextNode is literal text.
	TextNode
	// CommentNode is an HTML comment.
	CommentNode
	// OpaqueNode is an element whose content is kept verbatim in a
	// single TextNode child (script, style, pre...).
	OpaqueNode
	// StrayNode is a closing tag without a matching opening tag.
	StrayNode
)

var nodeTypeNames = [...]string{
	RootNode:    "ROOT",
	ElementNode: "ELEMENT",
	VoidNode:    "VOID",
	TextNode:    "TEXT",
	CommentNode: "COMMENT",
	OpaqueNode:  "OPAQUE",
	StrayNode:   "STRAY",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "UNKNOWN"
	}
	return nodeTypeNames[t]
}

// hasAttributes reports whether raw holds an opening tag.
func (t NodeType) hasAttributes() bool {
	return t == ElementNode || t == VoidNode || t == OpaqueNode
}

// Node is one unit of markup in a tree.
//
// A node is owned by at most one parent. The parent keeps the first and
// last child; children link to their siblings and hold a back-reference to
// the parent. All exported mutations keep those links consistent.
type Node struct {
	typ NodeType
	raw string
	tag string

	parent *Node
	head   *Node
	tail   *Node
	prev   *Node
	next   *Node
	size   int

	attrs   *AttributeMap
	attrErr error

	// closed records that an opaque node's closing tag was found.
	closed bool
}

// NewNode creates a node and, when parent is not nil, appends it to
// parent. The tag is lower-cased.
func NewNode(parent *Node, typ NodeType, raw, tag string) *Node {
	n := &Node{typ: typ, raw: raw, tag: strings.ToLower(tag)}
	if parent != nil {
		parent.Append(n)
	}
	return n
}

// NewRoot creates an empty root node.
func NewRoot(tag string) *Node {
	return NewNode(nil, RootNode, "", tag)
}

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Raw returns the source text the node was built from.
func (n *Node) Raw() string { return n.raw }

// Tag returns the lower-cased tag name, or "" for text.
func (n *Node) Tag() string { return n.tag }

// SetRaw replaces the raw text of a TEXT, COMMENT or STRAY node. The raw
// text of tag-bearing nodes is fixed at construction because attributes
// are derived from it; for those SetRaw does nothing and returns false.
func (n *Node) SetRaw(raw string) bool {
	switch n.typ {
	case TextNode, CommentNode, StrayNode:
		n.raw = raw
		return true
	}
	return false
}

// Parent returns the owning node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node { return n.head }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node { return n.tail }

// Next returns the next sibling, or nil.
func (n *Node) Next() *Node { return n.next }

// Prev returns the previous sibling, or nil.
func (n *Node) Prev() *Node { return n.prev }

// Len returns the number of children.
func (n *Node) Len() int { return n.size }

// Children yields the children in order. The iteration reads the next
// sibling before yielding, so the yielded child may be detached.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.head; c != nil; {
			next := c.next
			if !yield(c) {
				return
			}
			c = next
		}
	}
}

// At returns the child at index, or nil when out of range.
func (n *Node) At(index int) *Node {
	if index < 0 || index >= n.size {
		return nil
	}
	c := n.head
	for ; index > 0; index-- {
		c = c.next
	}
	return c
}

// IndexOf returns the position of child, or -1 if it is not a child of n.
func (n *Node) IndexOf(child *Node) int {
	if child == nil || child.parent != n {
		return -1
	}
	i := 0
	for c := n.head; c != nil; c = c.next {
		if c == child {
			return i
		}
		i++
	}
	return -1
}

// within reports whether n is other or lies beneath it.
func (n *Node) within(other *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == other {
			return true
		}
	}
	return false
}

// link inserts a detached node between prev and next under n. Either
// neighbour may be nil at the ends of the list.
func (n *Node) link(node, prev, next *Node) {
	node.parent = n
	node.prev = prev
	node.next = next
	if prev == nil {
		n.head = node
	} else {
		prev.next = node
	}
	if next == nil {
		n.tail = node
	} else {
		next.prev = node
	}
	n.size++
}

// Append detaches each node and adds it after the last child, in argument
// order. Nil nodes, n itself and ancestors of n are skipped.
func (n *Node) Append(nodes ...*Node) {
	for _, node := range nodes {
		if node == nil || n.within(node) {
			continue
		}
		node.Detach()
		n.link(node, n.tail, nil)
	}
}

// Detach removes n from its parent. Detaching a parentless node does
// nothing. Afterwards n has no parent and no siblings; its own children
// stay attached to it.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	if n.prev == nil {
		p.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		p.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	p.size--
	n.parent, n.prev, n.next = nil, nil, nil
}

// InsertAt detaches node and inserts it as child number index. A negative
// index is rejected; an index past the end appends.
func (n *Node) InsertAt(node *Node, index int) bool {
	if node == nil || index < 0 || n.within(node) {
		return false
	}
	node.Detach()
	if index >= n.size {
		n.link(node, n.tail, nil)
		return true
	}
	next := n.At(index)
	n.link(node, next.prev, next)
	return true
}

// InsertAfter moves node to directly after target. It returns false and
// leaves node untouched if target is not a child of n.
func (n *Node) InsertAfter(node, target *Node) bool {
	if !n.canInsert(node, target) {
		return false
	}
	node.Detach()
	n.link(node, target, target.next)
	return true
}

// InsertBefore moves node to directly before target. It returns false and
// leaves node untouched if target is not a child of n.
func (n *Node) InsertBefore(node, target *Node) bool {
	if !n.canInsert(node, target) {
		return false
	}
	node.Detach()
	n.link(node, target.prev, target)
	return true
}

func (n *Node) canInsert(node, target *Node) bool {
	return node != nil && target != nil && node != target &&
		target.parent == n && !n.within(node)
}

// After inserts nodes after n, in order, under n's parent.
func (n *Node) After(nodes ...*Node) {
	target := n
	for _, node := range nodes {
		if n.parent == nil || !n.parent.InsertAfter(node, target) {
			continue
		}
		target = node
	}
}

// Before inserts nodes before n, in order, under n's parent.
func (n *Node) Before(nodes ...*Node) {
	for _, node := range nodes {
		if n.parent != nil {
			n.parent.InsertBefore(node, n)
		}
	}
}

// ReplaceWith puts node in n's position and detaches n. It fails when n
// has no parent or when node is an ancestor of n.
func (n *Node) ReplaceWith(node *Node) bool {
	if node == n {
		return n.parent != nil
	}
	if node == nil || n.parent == nil || n.within(node) {
		return false
	}
	node.Detach()
	p := n.parent
	prev, next := n.prev, n.next
	n.Detach()
	p.link(node, prev, next)
	return true
}

// Traverse walks the descendants of n depth-first in document order.
// Returning false from visit skips the children of that node. Nodes ahead
// of the walk must not be moved while it runs.
func (n *Node) Traverse(visit func(*Node) bool) {
	stack := make([]*Node, 0, 16)
	pushChildren := func(p *Node) {
		for c := p.tail; c != nil; c = c.prev {
			stack = append(stack, c)
		}
	}
	pushChildren(n)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visit(node) {
			pushChildren(node)
		}
	}
}

// Find returns the first descendant, in document order, matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Traverse(func(node *Node) bool {
		if found != nil {
			return false
		}
		if pred(node) {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant matching pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var found []*Node
	n.Traverse(func(node *Node) bool {
		if pred(node) {
			found = append(found, node)
		}
		return true
	})
	return found
}

// Closest returns the nearest ancestor of n matching pred.
func (n *Node) Closest(pred func(*Node) bool) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if pred(p) {
			return p
		}
	}
	return nil
}

// HasTag returns a predicate matching nodes with any of the given tags.
func HasTag(tags ...string) func(*Node) bool {
	set := NewTagSet(tags...)
	return func(n *Node) bool {
		return n.typ != TextNode && n.typ != CommentNode && set.Has(n.tag)
	}
}

// OfType returns a predicate matching nodes of type t.
func OfType(t NodeType) func(*Node) bool {
	return func(n *Node) bool { return n.typ == t }
}

// Text returns the concatenated raw text of all TEXT descendants.
func (n *Node) Text() string {
	if n.typ == TextNode {
		return n.raw
	}
	var b strings.Builder
	n.Traverse(func(node *Node) bool {
		if node.typ == TextNode {
			b.WriteString(node.raw)
		}
		return true
	})
	return b.String()
}

// Attributes returns the attributes parsed from the node's opening tag.
// The result is computed once and cached. Nodes without an opening tag
// return an empty map. If the tag holds an invalid character, parsing
// stops there and the attributes read before it are kept.
func (n *Node) Attributes() *AttributeMap {
	if n.attrs == nil {
		n.attrs, n.attrErr = n.parseAttributes()
		if n.attrErr != nil {
			log.Debug("<%s> attributes truncated: %v", n.tag, n.attrErr)
		}
	}
	return n.attrs
}

// ParseAttributes is Attributes for callers that treat a malformed tag as
// an error. The returned map is the cached one in both cases.
func (n *Node) ParseAttributes() (*AttributeMap, error) {
	attrs := n.Attributes()
	return attrs, n.attrErr
}

func (n *Node) parseAttributes() (*AttributeMap, error) {
	if !n.typ.hasAttributes() {
		return NewAttributeMap(), nil
	}
	m := tagPattern.FindStringSubmatch(n.raw)
	if m == nil {
		return NewAttributeMap(), nil
	}
	return ParseAttributes(m[2])
}
