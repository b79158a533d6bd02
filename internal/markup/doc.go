// Package markup is a lenient HTML parser built around a mutable node tree.
//
// Parse turns arbitrary, possibly malformed HTML into a tree of *Node values
// in a single forward pass. It never fails: unmatched closing tags become
// STRAY nodes, unterminated script-like content runs to the end of input,
// a '<' that starts no tag is kept as text, and a small set of heuristics
// patch common invalid nesting (unclosed <p> and <li>).
//
// # Tree
//
// Children are stored as an intrusive doubly linked list. Every structural
// edit (Append, Detach, InsertAt, InsertAfter, InsertBefore, ReplaceWith)
// keeps sibling links symmetric, keeps the parent's first/last child
// pointers exact, and refuses to create cycles. A tree is plain mutable
// state: guard it with a lock if more than one goroutine touches it.
//
// # Attributes
//
// Attributes are parsed lazily from a node's raw opening tag the first time
// Attributes is called. AttributeMap keys are case-insensitive and values
// are kept in a canonical escaped form using the five-entry table of Escape
// and Unescape.
//
// # Rendering
//
// String and Render write normalised markup: lower-cased tag names,
// canonical attribute quoting, comments and stray closers omitted unless
// RenderOptions asks for them.
package markup
