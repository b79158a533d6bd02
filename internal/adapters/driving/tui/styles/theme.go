// Package styles holds the colour palette and lipgloss styles of the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hyperless/internal/markup"
)

// Theme is the palette the styles are derived from.
type Theme struct {
	Accent  lipgloss.Color
	Element lipgloss.Color
	Opaque  lipgloss.Color
	Text    lipgloss.Color
	Faint   lipgloss.Color
	Surface lipgloss.Color
	Frame   lipgloss.Color
	Good    lipgloss.Color
	Caution lipgloss.Color
	Bad     lipgloss.Color
}

// DefaultTheme returns the dark palette used when no theme is given.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  "#7C3AED",
		Element: "#06B6D4",
		Opaque:  "#FAB387",
		Text:    "#CDD6F4",
		Faint:   "#6C7086",
		Surface: "#181825",
		Frame:   "#45475A",
		Good:    "#A6E3A1",
		Caution: "#F9E2AF",
		Bad:     "#F38BA8",
	}
}

// Styles are the rendered styles shared by all views.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style

	// Pane frames the node detail beside the tree.
	Pane      lipgloss.Style
	StatusBar lipgloss.Style

	// Node styles, see Node.
	Tag     lipgloss.Style
	Opaque  lipgloss.Style
	Text    lipgloss.Style
	Comment lipgloss.Style
	Stray   lipgloss.Style
}

// NewStyles derives styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		theme: theme,

		Title:    fg(theme.Accent).Bold(true),
		Subtitle: fg(theme.Element).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Faint),
		Selected: fg(theme.Text).Background(theme.Accent).Bold(true),
		Error:    fg(theme.Bad),
		Success:  fg(theme.Good),
		Warning:  fg(theme.Caution),
		Help:     fg(theme.Faint),

		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame).
			Padding(0, 1),
		StatusBar: fg(theme.Faint).Background(theme.Surface).Padding(0, 1),

		Tag:     fg(theme.Element),
		Opaque:  fg(theme.Opaque),
		Text:    fg(theme.Text),
		Comment: fg(theme.Faint).Italic(true),
		Stray:   fg(theme.Caution).Strikethrough(true),
	}
}

// DefaultStyles returns NewStyles(nil).
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Node returns the style for a node of type t.
func (s *Styles) Node(t markup.NodeType) lipgloss.Style {
	switch t {
	case markup.RootNode:
		return s.Title
	case markup.OpaqueNode:
		return s.Opaque
	case markup.TextNode:
		return s.Text
	case markup.CommentNode:
		return s.Comment
	case markup.StrayNode:
		return s.Stray
	default:
		return s.Tag
	}
}
