package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/views/doccontent"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/views/docdetails"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/views/documents"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/views/tree"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the key bindings.
	keymap *keymap.KeyMap

	// treeView explores the parsed document.
	treeView *tree.View

	// documentsView is the documents list view component.
	documentsView *documents.View

	// docContentView is the document content view component.
	docContentView *doccontent.View

	// docDetailsView is the document details view component.
	docDetailsView *docdetails.View

	// statusBar is shown below every view.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// showHelp overlays the full key binding list.
	showHelp bool

	// treeCounts is the last node count reported by the tree.
	treeCounts messages.NodeCounted

	// initCmd is returned by Init.
	initCmd tea.Cmd

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application that explores html. When html is
// empty and a document service is available, the app opens on the
// document index instead.
func NewApp(ports *Ports, html string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		treeView:       tree.NewView(s, km),
		documentsView:  documents.NewView(s, ports.Document),
		docContentView: doccontent.NewView(s, ports.Document),
		docDetailsView: docdetails.NewView(s),
		statusBar:      status.NewBar(s, km),
		currentView:    messages.ViewTree,
	}

	if html == "" && ports.Document != nil {
		a.currentView = messages.ViewDocuments
		a.initCmd = a.documentsView.Load()
	} else {
		a.initCmd = a.treeView.SetRoot(ports.Markup.Parse(html))
	}
	a.syncStatus()

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("hyperless"),
		a.initCmd,
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.NodeCounted:
		a.treeCounts = msg
		a.syncStatus()
		return a, nil

	case messages.DocumentsLoaded:
		a.documentsView, cmd = a.documentsView.Update(msg)
		a.syncStatus()
		return a, cmd

	case messages.DocumentDeleted:
		a.documentsView, cmd = a.documentsView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.syncStatus()
		return a, cmd

	case messages.DocumentSelected:
		a.err = nil
		a.currentView = messages.ViewDocContent
		a.syncStatus()
		return a, a.docContentView.SetDocument(&msg.Document)

	case messages.DocumentContentLoaded:
		a.docContentView, cmd = a.docContentView.Update(msg)
		return a, cmd

	case messages.DocumentDetailsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.err = nil
			a.docDetailsView.SetDetails(msg.Details)
			a.currentView = messages.ViewDocDetails
		}
		a.syncStatus()
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.syncStatus()
		return a, a.forward(msg)
	}

	return a, a.forward(msg)
}

// handleKeyMsg applies global bindings and forwards other keys to the
// active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	// Global quit with ctrl+c
	if k == "ctrl+c" {
		return a, tea.Quit
	}

	// The delete prompt and the filter input take every key.
	if a.currentView == messages.ViewDocuments && a.documentsView.CapturesInput() {
		cmd := a.forward(msg)
		a.syncStatus()
		return a, cmd
	}

	if a.showHelp {
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Help), keymap.Matches(k, a.keymap.Back):
			a.showHelp = false
			a.syncStatus()
		}
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = true
		a.syncStatus()
		return a, nil
	case keymap.Matches(k, a.keymap.SwitchView):
		if a.currentView == messages.ViewTree {
			return a, a.switchTo(messages.ViewDocuments)
		}
		return a, a.switchTo(messages.ViewTree)
	}

	return a, a.forward(msg)
}

// switchTo activates view, loading the document list when needed.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	if view == messages.ViewDocuments && a.ports.Document == nil {
		a.err = fmt.Errorf("no document index available")
		a.syncStatus()
		return nil
	}

	previous := a.currentView
	a.currentView = view
	a.err = nil
	a.syncStatus()

	// Returning from details or content keeps the loaded list.
	if view == messages.ViewDocuments && previous == messages.ViewTree {
		return a.documentsView.Load()
	}
	return nil
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewTree:
		a.treeView, cmd = a.treeView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewDocContent:
		a.docContentView, cmd = a.docContentView.Update(msg)
	case messages.ViewDocDetails:
		a.docDetailsView, cmd = a.docDetailsView.Update(msg)
	}
	return cmd
}

// syncStatus updates the status bar for the active view.
func (a *App) syncStatus() {
	a.statusBar.Clear()
	switch {
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.err.Error())
	case a.showHelp:
		a.statusBar.SetState(status.StateHelp)
	case a.currentView == messages.ViewTree:
		a.statusBar.SetState(status.StateTree)
		a.statusBar.SetCounts(a.treeCounts.Visible, a.treeCounts.Total)
	case a.currentView == messages.ViewDocuments:
		a.statusBar.SetState(status.StateDocuments)
		a.statusBar.SetCounts(len(a.documentsView.Visible()), len(a.documentsView.Documents()))
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch {
	case a.showHelp:
		body = a.viewHelp()
	case a.currentView == messages.ViewDocuments:
		body = a.documentsView.View()
	case a.currentView == messages.ViewDocContent:
		body = a.docContentView.View()
	case a.currentView == messages.ViewDocDetails:
		body = a.docDetailsView.View()
	default:
		body = a.treeView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the full key binding list.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")
	for _, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[?/esc] close help"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Tree returns the node tree view.
func (a *App) Tree() *tree.View {
	return a.treeView
}

// Root returns the root of the explored tree.
func (a *App) Root() *markup.Node {
	return a.treeView.Root()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// ShowingHelp reports whether the help overlay is open.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions. One line is kept for the
// status bar.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	viewHeight := max(height-1, 1)
	a.treeView.SetDimensions(width, viewHeight)
	a.documentsView.SetDimensions(width, viewHeight)
	a.docContentView.SetDimensions(width, viewHeight)
	a.docDetailsView.SetDimensions(width, viewHeight)
	a.statusBar.SetWidth(width)
}
