// Package status renders the one-line status bar at the bottom of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
)

// State selects what the bar summarises.
type State int

const (
	StateReady State = iota
	StateTree
	StateDocuments
	StateError
	StateHelp
)

var stateNames = [...]string{
	StateReady:     "ready",
	StateTree:      "tree",
	StateDocuments: "documents",
	StateError:     "error",
	StateHelp:      "help",
}

// String returns the lowercase state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Bar shows a summary on the left and key hints on the right.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	visible int
	total   int
	width   int
}

// NewBar creates a status bar. Nil arguments use the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, width: 80}
}

// View renders the bar at its width.
func (b *Bar) View() string {
	left := b.summary()
	right := b.styles.Muted.Render(b.hints())
	gap := max(b.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) summary() string {
	switch b.state {
	case StateError:
		if b.message == "" {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + b.message)
	case StateHelp:
		return b.styles.Normal.Render("Help")
	case StateTree:
		if b.visible < b.total {
			return b.styles.Normal.Render(fmt.Sprintf("%d of %d nodes", b.visible, b.total))
		}
		return b.styles.Normal.Render(fmt.Sprintf("%d nodes", b.total))
	case StateDocuments:
		if b.visible < b.total {
			return b.styles.Normal.Render(fmt.Sprintf("%d of %s", b.visible, plural(b.total, "document")))
		}
		return b.styles.Normal.Render(plural(b.total, "document"))
	}
	if b.message != "" {
		return b.styles.Normal.Render(b.message)
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) hints() string {
	var bindings []key.Binding
	switch b.state {
	case StateTree:
		bindings = b.keymap.TreeHelp()
	case StateDocuments:
		bindings = b.keymap.DocumentsHelp()
	default:
		bindings = b.keymap.ShortHelp()
	}

	parts := make([]string, len(bindings))
	for i, binding := range bindings {
		parts[i] = binding.Help().Key + ": " + binding.Help().Desc
	}
	return strings.Join(parts, " | ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// SetState sets what the bar summarises.
func (b *Bar) SetState(state State) { b.state = state }

// State returns the current state.
func (b *Bar) State() State { return b.state }

// SetMessage sets the error text or the ready message.
func (b *Bar) SetMessage(message string) { b.message = message }

// Message returns the current message.
func (b *Bar) Message() string { return b.message }

// SetCounts sets how many items are shown out of total.
func (b *Bar) SetCounts(visible, total int) {
	b.visible, b.total = visible, total
}

// Counts returns the shown and total item counts.
func (b *Bar) Counts() (visible, total int) { return b.visible, b.total }

// SetWidth sets the rendered width.
func (b *Bar) SetWidth(width int) { b.width = width }

// Clear returns the bar to StateReady with no message or counts.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.visible, b.total = 0, 0
}
