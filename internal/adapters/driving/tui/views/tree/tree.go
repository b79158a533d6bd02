// Package tree provides the node tree explorer view for the TUI.
package tree

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// row is one visible line of the tree.
type row struct {
	node  *markup.Node
	depth int
}

// View is the tree explorer. The left pane lists the visible nodes, the
// right pane describes the selected one.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	root     *markup.Node
	expanded map[*markup.Node]bool
	rows     []row
	total    int

	cursor       int
	scrollOffset int
	showComments bool
	showStrays   bool

	width  int
	height int
}

// NewView creates a new tree view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		expanded: make(map[*markup.Node]bool),
		width:    80,
		height:   24,
	}
}

// SetRoot shows a new tree with the root and its element children open.
func (v *View) SetRoot(root *markup.Node) tea.Cmd {
	v.root = root
	v.expanded = make(map[*markup.Node]bool)
	v.cursor = 0
	v.scrollOffset = 0
	v.total = 0
	if root != nil {
		v.expanded[root] = true
		for c := range root.Children() {
			if c.Type() == markup.ElementNode {
				v.expanded[c] = true
			}
		}
		root.Traverse(func(*markup.Node) bool {
			v.total++
			return true
		})
	}
	return v.rebuild()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tree view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.root == nil {
		return v, nil
	}

	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		v.moveTo(v.cursor - 1)
	case keymap.Matches(k, v.keymap.Down):
		v.moveTo(v.cursor + 1)
	case keymap.Matches(k, v.keymap.Expand):
		return v, v.expand()
	case keymap.Matches(k, v.keymap.Collapse):
		return v, v.collapse()
	case keymap.Matches(k, v.keymap.Toggle):
		if n := v.Selected(); n != nil && hasChildren(n) {
			v.expanded[n] = !v.expanded[n]
			return v, v.rebuild()
		}
	case keymap.Matches(k, v.keymap.ExpandAll):
		v.root.Traverse(func(n *markup.Node) bool {
			if hasChildren(n) {
				v.expanded[n] = true
			}
			return true
		})
		return v, v.rebuild()
	case keymap.Matches(k, v.keymap.CollapseAll):
		v.expanded = map[*markup.Node]bool{v.root: true}
		return v, v.rebuild()
	case keymap.Matches(k, v.keymap.Comments):
		v.showComments = !v.showComments
		return v, v.rebuild()
	case keymap.Matches(k, v.keymap.Strays):
		v.showStrays = !v.showStrays
		return v, v.rebuild()
	}
	return v, nil
}

// expand opens the selected node, or moves to its first child when it is
// already open.
func (v *View) expand() tea.Cmd {
	n := v.Selected()
	if n == nil || !hasChildren(n) {
		return nil
	}
	if !v.expanded[n] {
		v.expanded[n] = true
		return v.rebuild()
	}
	if v.cursor+1 < len(v.rows) && v.rows[v.cursor+1].node.Parent() == n {
		v.moveTo(v.cursor + 1)
	}
	return nil
}

// collapse closes the selected node, or moves to its parent when it is
// already closed.
func (v *View) collapse() tea.Cmd {
	n := v.Selected()
	if n == nil {
		return nil
	}
	if v.expanded[n] && n != v.root {
		delete(v.expanded, n)
		return v.rebuild()
	}
	if parent := n.Parent(); parent != nil {
		v.selectNode(parent)
	}
	return nil
}

// rebuild recomputes the visible rows, keeping the selected node when it is
// still visible.
func (v *View) rebuild() tea.Cmd {
	selected := v.Selected()
	v.rows = v.rows[:0]

	if v.root != nil {
		stack := []row{{node: v.root}}
		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !v.visible(r.node) {
				continue
			}
			v.rows = append(v.rows, r)
			if !v.expanded[r.node] {
				continue
			}
			for c := r.node.LastChild(); c != nil; c = c.Prev() {
				stack = append(stack, row{node: c, depth: r.depth + 1})
			}
		}
	}

	if selected == nil || !v.selectNode(selected) {
		v.moveTo(min(v.cursor, len(v.rows)-1))
	}

	visible, total := len(v.rows), v.total
	return func() tea.Msg {
		return messages.NodeCounted{Visible: visible, Total: total}
	}
}

// visible reports whether n is shown with the current filters.
func (v *View) visible(n *markup.Node) bool {
	switch {
	case IsBlank(n):
		return false
	case n.Type() == markup.CommentNode:
		return v.showComments
	case n.Type() == markup.StrayNode:
		return v.showStrays
	}
	return true
}

// selectNode moves the cursor to n. It reports false if n is not visible.
func (v *View) selectNode(n *markup.Node) bool {
	for i, r := range v.rows {
		if r.node == n {
			v.moveTo(i)
			return true
		}
	}
	return false
}

// moveTo places the cursor at index, clamped to the rows, and scrolls it
// into view.
func (v *View) moveTo(index int) {
	v.cursor = max(0, min(index, len(v.rows)-1))
	visibleLines := v.visibleLines()
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	} else if v.cursor >= v.scrollOffset+visibleLines {
		v.scrollOffset = v.cursor - visibleLines + 1
	}
}

// visibleLines returns the number of tree lines that fit on screen.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator and status bar
	return max(v.height-4, 1)
}

// View renders the tree and detail panes.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Node Tree"))
	b.WriteString("\n\n")

	if v.root == nil {
		b.WriteString(v.styles.Muted.Render("No document loaded. Press tab to browse the index."))
		return b.String()
	}

	treeWidth := max(v.width/2, 20)
	detailWidth := max(v.width-treeWidth-4, 20)

	var lines []string
	visibleLines := v.visibleLines()
	for i := v.scrollOffset; i < len(v.rows) && i < v.scrollOffset+visibleLines; i++ {
		lines = append(lines, v.renderRow(i, treeWidth))
	}
	left := lipgloss.NewStyle().Width(treeWidth).Render(strings.Join(lines, "\n"))

	right := ""
	if n := v.Selected(); n != nil {
		right = v.styles.Pane.Width(detailWidth).Render(
			Detail(n, v.styles, markup.RenderOptions{Comments: v.showComments, Strays: v.showStrays}, detailWidth-4, visibleLines-2),
		)
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	return b.String()
}

// renderRow renders one line of the tree.
func (v *View) renderRow(index, width int) string {
	r := v.rows[index]
	marker := "  "
	if hasChildren(r.node) {
		marker = "▸ "
		if v.expanded[r.node] {
			marker = "▾ "
		}
	}

	line := strings.Repeat("  ", r.depth) + marker + Label(r.node)
	if runes := []rune(line); len(runes) > width {
		line = string(runes[:width-1]) + "…"
	}

	if index == v.cursor {
		return v.styles.Selected.Render(line)
	}
	return v.styles.Node(r.node.Type()).Render(line)
}

// hasChildren reports whether n has children worth expanding. An opaque
// element's single text child is shown in the detail pane instead.
func hasChildren(n *markup.Node) bool {
	return n.Len() > 0 && n.Type() != markup.OpaqueNode
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.moveTo(v.cursor)
}

// Selected returns the node under the cursor.
func (v *View) Selected() *markup.Node {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return nil
	}
	return v.rows[v.cursor].node
}

// Cursor returns the cursor position.
func (v *View) Cursor() int {
	return v.cursor
}

// Rows returns the labels of the visible rows, indented by depth.
func (v *View) Rows() []string {
	out := make([]string, len(v.rows))
	for i, r := range v.rows {
		out[i] = strings.Repeat("  ", r.depth) + Label(r.node)
	}
	return out
}

// Counts returns the number of visible rows and of nodes in the tree.
func (v *View) Counts() (visible, total int) {
	return len(v.rows), v.total
}

// ShowComments reports whether comment nodes are shown.
func (v *View) ShowComments() bool {
	return v.showComments
}

// ShowStrays reports whether stray closing tags are shown.
func (v *View) ShowStrays() bool {
	return v.showStrays
}

// String describes the view state for debugging.
func (v *View) String() string {
	return fmt.Sprintf("tree(%d rows, cursor %d)", len(v.rows), v.cursor)
}

// Root returns the root of the displayed tree.
func (v *View) Root() *markup.Node {
	return v.root
}
