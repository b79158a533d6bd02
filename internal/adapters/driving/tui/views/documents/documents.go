// Package documents provides the documents list view component for the TUI.
package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

// errNoService is returned by commands when no document service is wired.
var errNoService = fmt.Errorf("document service not available")

// View is the documents list view.
type View struct {
	styles          *styles.Styles
	documentService driving.DocumentService

	documents []domain.Document
	// visible indexes the documents matching the filter; selected and
	// scrollOffset index into it.
	visible   []int
	filter    textinput.Model
	filtering bool

	selected      int
	width         int
	height        int
	ready         bool
	err           error
	loading       bool
	confirmDelete bool
	scrollOffset  int
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, documentService driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "title or path"
	filter.CharLimit = 128
	// A blinking cursor would keep a tick command in flight.
	filter.Cursor.SetMode(cursor.CursorStatic)

	return &View{
		styles:          s,
		documentService: documentService,
		documents:       []domain.Document{},
		filter:          filter,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load returns a command that loads the indexed documents.
func (v *View) Load() tea.Cmd {
	v.loading = true
	v.confirmDelete = false
	service := v.documentService
	return func() tea.Msg {
		if service == nil {
			return messages.DocumentsLoaded{Err: errNoService}
		}
		docs, err := service.List(context.Background())
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case v.confirmDelete:
			return v.handleConfirmKeyMsg(msg)
		case v.filtering:
			return v, v.handleFilterKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.DocumentsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.documents = msg.Documents
		v.err = nil
		v.applyFilter()
		return v, nil

	case messages.DocumentDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		// Reload documents after deletion
		return v, v.Load()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.visible)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		if doc := v.SelectedDocument(); doc != nil {
			return v, v.loadDocDetails(doc.ID)
		}
	case "v":
		if doc := v.SelectedDocument(); doc != nil {
			selected := *doc
			return v, func() tea.Msg {
				return messages.DocumentSelected{Document: selected}
			}
		}
	case "d":
		if v.SelectedDocument() != nil {
			v.confirmDelete = true
		}
	case "r":
		return v, v.Load()
	case "/":
		v.filtering = true
		return v, v.filter.Focus()
	case "esc":
		if v.filter.Value() != "" {
			v.clearFilter()
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewTree}
		}
	}

	return v, nil
}

// handleConfirmKeyMsg handles the answer to the delete prompt.
func (v *View) handleConfirmKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.confirmDelete = false
	switch msg.String() {
	case "y", "enter":
		if doc := v.SelectedDocument(); doc != nil {
			return v, v.deleteDocument(doc.ID)
		}
	}
	return v, nil
}

// handleFilterKeyMsg edits the filter. Enter keeps the filter and returns
// to the list; esc clears it.
func (v *View) handleFilterKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		v.filtering = false
		v.filter.Blur()
		return nil
	case tea.KeyEsc:
		v.clearFilter()
		return nil
	}

	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.applyFilter()
	return cmd
}

func (v *View) clearFilter() {
	v.filtering = false
	v.filter.Blur()
	v.filter.Reset()
	v.applyFilter()
}

// applyFilter recomputes the visible documents, matching the filter
// case-insensitively against titles and URIs.
func (v *View) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(v.filter.Value()))
	v.visible = v.visible[:0]
	for i, doc := range v.documents {
		if query == "" ||
			strings.Contains(strings.ToLower(doc.Title), query) ||
			strings.Contains(strings.ToLower(doc.URI), query) {
			v.visible = append(v.visible, i)
		}
	}
	v.selected = max(min(v.selected, len(v.visible)-1), 0)
	v.scrollOffset = min(v.scrollOffset, v.selected)
	v.adjustScroll()
}

// loadDocDetails returns a command that loads document details.
func (v *View) loadDocDetails(docID string) tea.Cmd {
	service := v.documentService
	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: errNoService}
		}

		details, err := service.GetDetails(context.Background(), docID)
		return messages.DocumentDetailsLoaded{
			DocumentID: docID,
			Details:    details,
			Err:        err,
		}
	}
}

// deleteDocument returns a command that removes the document from the index.
func (v *View) deleteDocument(docID string) tea.Cmd {
	service := v.documentService
	return func() tea.Msg {
		if service == nil {
			return messages.DocumentDeleted{DocumentID: docID, Err: errNoService}
		}

		err := service.Delete(context.Background(), docID)
		return messages.DocumentDeleted{DocumentID: docID, Err: err}
	}
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, separator, help, and padding
	return max(v.height-8, 1)
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Documents (%d)", len(v.documents))
	if len(v.visible) < len(v.documents) {
		title = fmt.Sprintf("Documents (%d of %d)", len(v.visible), len(v.documents))
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	if v.filtering || v.filter.Value() != "" {
		b.WriteString(v.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.documents) == 0:
		b.WriteString(v.styles.Muted.Render("No documents indexed. Run 'hyperless index <path>' to add some."))
	case len(v.visible) == 0:
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("No documents match %q.", v.filter.Value())))
	default:
		visibleItems := v.visibleItemCount()
		for i := v.scrollOffset; i < len(v.visible) && i < v.scrollOffset+visibleItems; i++ {
			b.WriteString(v.renderDocument(i, &v.documents[v.visible[i]]))
			b.WriteString("\n")
		}

		if len(v.visible) > visibleItems {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
				v.scrollOffset+1,
				min(v.scrollOffset+visibleItems, len(v.visible)),
				len(v.visible))))
		}
	}

	b.WriteString("\n\n")
	if v.confirmDelete {
		if doc := v.SelectedDocument(); doc != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Delete %s from the index? [y/N]", doc.URI)))
			return b.String()
		}
	}
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderDocument renders a single document line.
func (v *View) renderDocument(index int, doc *domain.Document) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	title := doc.Title
	if title == "" {
		title = doc.ID
	}

	maxLen := max(v.width/2-4, 10)
	title = truncate(title, maxLen)

	uri := doc.URI
	if runes := []rune(uri); len(runes) > maxLen {
		uri = "..." + string(runes[len(runes)-maxLen+3:])
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxLen, title, uri))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxLen, title)) +
		v.styles.Muted.Render(uri)
}

// truncate shortens s to at most n characters.
func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n-3]) + "..."
	}
	return s
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	if v.filtering {
		return v.styles.Help.Render("[enter] apply filter  [esc] clear")
	}
	return v.styles.Help.Render("[↑/↓] navigate  [enter] details  [v] view  [/] filter  [d] delete  [r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Documents returns every loaded document.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// Visible returns the documents matching the filter.
func (v *View) Visible() []domain.Document {
	docs := make([]domain.Document, len(v.visible))
	for i, idx := range v.visible {
		docs[i] = v.documents[idx]
	}
	return docs
}

// SelectedIndex returns the currently selected document index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedDocument returns the currently selected document.
func (v *View) SelectedDocument() *domain.Document {
	if v.selected < len(v.visible) {
		return &v.documents[v.visible[v.selected]]
	}
	return nil
}

// IsConfirmingDelete reports whether the delete prompt is shown.
func (v *View) IsConfirmingDelete() bool {
	return v.confirmDelete
}

// IsFiltering reports whether keys go to the filter input.
func (v *View) IsFiltering() bool {
	return v.filtering
}

// CapturesInput reports whether the view needs every key, including
// the global bindings.
func (v *View) CapturesInput() bool {
	return v.confirmDelete || v.filtering
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
