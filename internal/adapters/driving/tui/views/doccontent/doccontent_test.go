package doccontent

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

// MockDocumentService serves GetContent. Other methods panic.
type MockDocumentService struct {
	driving.DocumentService

	Content string
	Err     error
}

func (m *MockDocumentService) GetContent(_ context.Context, _ string) (string, error) {
	return m.Content, m.Err
}

// numbered returns n short lines.
func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line " + string(rune('a'+i%26))
	}
	return strings.Join(lines, "\n")
}

func loadedView(t *testing.T, content string, height int) *View {
	t.Helper()
	view := NewView(nil, &MockDocumentService{Content: content})
	view.SetDimensions(80, height)
	cmd := view.SetDocument(&domain.Document{ID: "doc-1", Title: "Guide", URI: "/docs/guide.html"})
	require.NotNil(t, cmd)
	view.Update(cmd())
	return view
}

func TestView_SetDocument(t *testing.T) {
	view := NewView(nil, &MockDocumentService{Content: "Hello"})

	cmd := view.SetDocument(&domain.Document{ID: "doc-1"})
	assert.True(t, view.loading)
	assert.Contains(t, view.View(), "Loading content...")

	msg := cmd()
	assert.Equal(t, messages.DocumentContentLoaded{DocumentID: "doc-1", Content: "Hello"}, msg)

	view.Update(msg)
	assert.False(t, view.loading)
	assert.Equal(t, "Hello", view.Content())
	assert.Equal(t, "doc-1", view.Document().ID)
}

func TestView_SetDocument_NoService(t *testing.T) {
	view := NewView(nil, nil)

	msg, ok := view.SetDocument(&domain.Document{ID: "doc-1"})().(messages.DocumentContentLoaded)

	require.True(t, ok)
	assert.EqualError(t, msg.Err, "document service not available")
}

func TestView_ContentError(t *testing.T) {
	view := NewView(nil, &MockDocumentService{Err: errors.New("gone")})

	view.Update(view.SetDocument(&domain.Document{ID: "doc-1"})())

	assert.EqualError(t, view.Err(), "gone")
	assert.Contains(t, view.View(), "Error: gone")
}

func TestView_WrapContent(t *testing.T) {
	view := loadedView(t, strings.Repeat("é", 30)+"\n\nend", 24)
	view.SetDimensions(24, 24)

	assert.Equal(t, []string{strings.Repeat("é", 20), strings.Repeat("é", 10), "", "end"}, view.Lines())
}

func TestView_Scroll(t *testing.T) {
	// 30 lines with 10 visible.
	view := loadedView(t, numbered(30), 16)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.viewport.YOffset)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, view.viewport.YOffset)

	view.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 11, view.viewport.YOffset)

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	view.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, 20, view.viewport.YOffset)
	assert.Contains(t, view.View(), "[100%] Line 21-30 of 30")

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, view.viewport.YOffset)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 20, view.viewport.YOffset)

	view.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	view.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	view.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, 0, view.viewport.YOffset)
}

func TestView_Scroll_ContentFits(t *testing.T) {
	view := loadedView(t, "one\ntwo", 24)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 0, view.viewport.YOffset)
	assert.NotContains(t, view.View(), "Line 1-")
}

func TestView_Back(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewDocuments}, cmd())
}

func TestView_View(t *testing.T) {
	view := loadedView(t, "Install the tool.", 24)

	output := view.View()

	assert.Contains(t, output, "Guide")
	assert.Contains(t, output, "Install the tool.")
}

func TestView_View_Empty(t *testing.T) {
	view := loadedView(t, "", 24)
	view.document.Title = ""

	output := view.View()

	assert.Contains(t, output, "/docs/guide.html")
	assert.Contains(t, output, "(No content)")
}

func TestView_ResizeKeepsOffset(t *testing.T) {
	view := loadedView(t, numbered(30), 16)
	for range 4 {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	view.SetDimensions(100, 16)
	assert.Equal(t, 4, view.viewport.YOffset)

	// Taller than the content: clamped to the top.
	view.SetDimensions(100, 60)
	assert.Equal(t, 0, view.viewport.YOffset)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("", 10))
	assert.Equal(t, []string{"abc", "de", ""}, wrap("abcde\n", 3))
}
