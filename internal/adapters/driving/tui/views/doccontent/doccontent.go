// Package doccontent shows the stored text of one document in a
// scrollable viewport.
package doccontent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

// chromeLines are taken by the title, separator, position and help.
const chromeLines = 6

var errNoService = errors.New("document service not available")

// View is the document content view.
type View struct {
	styles   *styles.Styles
	docs     driving.DocumentService
	viewport viewport.Model

	document *domain.Document
	content  string
	lines    []string
	width    int
	loading  bool
	err      error
}

// NewView creates a content view reading from docs.
func NewView(s *styles.Styles, docs driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{styles: s, docs: docs, viewport: viewport.New(0, 0)}
	v.SetDimensions(80, 24)
	return v
}

// SetDocument clears the view and returns the command loading doc.
func (v *View) SetDocument(doc *domain.Document) tea.Cmd {
	v.document = doc
	v.err = nil
	v.loading = true
	v.setContent("")

	docs := v.docs
	return func() tea.Msg {
		if doc == nil || docs == nil {
			return messages.DocumentContentLoaded{Err: errNoService}
		}
		content, err := docs.GetContent(context.Background(), doc.ID)
		return messages.DocumentContentLoaded{DocumentID: doc.ID, Content: content, Err: err}
	}
}

// Init implements tea.Model.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles loading results and scrolling keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case messages.DocumentContentLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.setContent(msg.Content)
		}
		return v, nil
	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewDocuments} }
		case "home", "g":
			v.viewport.GotoTop()
			return v, nil
		case "end", "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the title, the visible lines and a position indicator.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title()))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading content..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(No content)"))
	default:
		b.WriteString(v.viewport.View())
		if len(v.lines) > v.viewport.Height {
			first := v.viewport.YOffset + 1
			last := min(v.viewport.YOffset+v.viewport.Height, len(v.lines))
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%.0f%%] Line %d-%d of %d",
				v.viewport.ScrollPercent()*100, first, last, len(v.lines))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back"))
	return b.String()
}

func (v *View) title() string {
	switch {
	case v.document == nil:
		return "Document Content"
	case v.document.Title != "":
		return v.document.Title
	default:
		return v.document.URI
	}
}

// SetDimensions resizes the viewport and re-wraps the content.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.viewport.Width = max(width-4, 20)
	v.viewport.Height = max(height-chromeLines, 1)
	offset := v.viewport.YOffset
	v.setContent(v.content)
	v.viewport.SetYOffset(offset)
}

func (v *View) setContent(content string) {
	v.content = content
	v.lines = wrap(content, v.viewport.Width)
	v.viewport.SetContent(strings.Join(v.lines, "\n"))
	v.viewport.GotoTop()
}

// wrap hard-wraps every line of s at width runes.
func wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		lines = append(lines, string(runes))
	}
	return lines
}

// Document returns the document being shown.
func (v *View) Document() *domain.Document {
	return v.document
}

// Content returns the unwrapped text.
func (v *View) Content() string {
	return v.content
}

// Lines returns the wrapped text.
func (v *View) Lines() []string {
	return v.lines
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}
