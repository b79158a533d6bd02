// Package docdetails shows the stored fields and metadata of one indexed
// document.
package docdetails

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	// chromeLines are taken by the title, separator and help footer.
	chromeLines = 6
	// maxValueLength caps metadata values on one line.
	maxValueLength = 50
)

type lineKind int

const (
	fieldLine lineKind = iota
	headingLine
	textLine
	blankLine
)

// line is one row of the details body.
type line struct {
	kind  lineKind
	label string
	value string
}

// View is the document details view.
type View struct {
	styles *styles.Styles

	details *driving.DocumentDetails
	lines   []line
	offset  int
	width   int
	height  int
	ready   bool
	err     error
}

// NewView creates a details view. Nil styles use the defaults.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80}
}

// SetDetails shows details from the top.
func (v *View) SetDetails(details *driving.DocumentDetails) {
	v.details = details
	v.offset = 0
	v.err = nil
	v.layout()
}

// SetError shows err instead of the details.
func (v *View) SetError(err error) {
	v.err = err
}

// Init implements tea.Model.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and navigation keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case messages.ErrorOccurred:
		v.err = msg.Err
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		v.scroll(-1)
	case "down", "j":
		v.scroll(1)
	case "v":
		if v.details == nil {
			return nil
		}
		doc := domain.Document{ID: v.details.ID, Title: v.details.Title, URI: v.details.URI}
		return func() tea.Msg { return messages.DocumentSelected{Document: doc} }
	case "esc":
		return func() tea.Msg { return messages.ViewChanged{View: messages.ViewDocuments} }
	}
	return nil
}

func (v *View) scroll(delta int) {
	v.offset = max(0, min(v.offset+delta, v.maxOffset()))
}

func (v *View) visibleLines() int {
	return max(v.height-chromeLines, 1)
}

func (v *View) maxOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// layout rebuilds the body lines for the current details and width.
func (v *View) layout() {
	v.lines = nil
	d := v.details
	if d == nil {
		return
	}

	v.field("ID", d.ID)
	v.field("Title", d.Title)
	v.field("URI", d.URI)
	v.field("Chunks", strconv.Itoa(d.ChunkCount))
	if !d.CreatedAt.IsZero() {
		v.field("Created", d.CreatedAt.Format(timeLayout))
	}
	if !d.UpdatedAt.IsZero() {
		v.field("Updated", d.UpdatedAt.Format(timeLayout))
	}

	if d.Excerpt != "" {
		v.heading("Excerpt")
		for _, text := range wrap(d.Excerpt, max(v.width-6, 20)) {
			v.lines = append(v.lines, line{kind: textLine, value: text})
		}
	}

	if len(d.Metadata) > 0 {
		v.heading("Metadata")
		for _, key := range slices.Sorted(maps.Keys(d.Metadata)) {
			v.lines = append(v.lines, line{kind: textLine, label: key, value: clip(d.Metadata[key], maxValueLength)})
		}
	}
}

func (v *View) field(label, value string) {
	v.lines = append(v.lines, line{kind: fieldLine, label: label, value: value})
}

func (v *View) heading(title string) {
	v.lines = append(v.lines, line{kind: blankLine}, line{kind: headingLine, label: title})
}

// View renders the details.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Document Details"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.details == nil:
		b.WriteString(v.styles.Muted.Render("No document details available"))
		b.WriteString("\n")
	default:
		end := min(v.offset+v.visibleLines(), len(v.lines))
		for _, l := range v.lines[v.offset:end] {
			b.WriteString(v.renderLine(l))
			b.WriteString("\n")
		}
		if len(v.lines) > v.visibleLines() {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("\n  [Line %d-%d of %d]", v.offset+1, end, len(v.lines))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] scroll  [v] view content  [esc] back"))
	return b.String()
}

func (v *View) renderLine(l line) string {
	switch l.kind {
	case fieldLine:
		return v.styles.Subtitle.Render(fmt.Sprintf("%-12s", l.label+":")) + " " + v.styles.Normal.Render(l.value)
	case headingLine:
		return v.styles.Subtitle.Render(l.label + ":")
	case textLine:
		if l.label == "" {
			return "  " + v.styles.Normal.Render(l.value)
		}
		return "  " + v.styles.Muted.Render(l.label+":") + " " + v.styles.Normal.Render(l.value)
	default:
		return ""
	}
}

// SetDimensions sets the view size and re-wraps the excerpt.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.layout()
	v.offset = min(v.offset, v.maxOffset())
}

// Details returns the shown details.
func (v *View) Details() *driving.DocumentDetails {
	return v.details
}

// Err returns the shown error.
func (v *View) Err() error {
	return v.err
}

// clip shortens s to at most n runes, marking the cut with "...".
func clip(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

// wrap breaks s into lines of at most width runes at spaces.
func wrap(s string, width int) []string {
	var lines []string
	var current []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(current) > 0 && len(current)+1+len(w) > width {
			lines = append(lines, string(current))
			current = current[:0]
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, w...)
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
