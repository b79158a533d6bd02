package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/markup"
)

func TestDefaultTheme_AccentsDiffer(t *testing.T) {
	th := DefaultTheme()

	accents := []lipgloss.Color{th.Accent, th.Element, th.Opaque, th.Good, th.Caution, th.Bad}
	seen := map[lipgloss.Color]bool{}
	for _, c := range accents {
		require.NotEmpty(t, string(c))
		assert.False(t, seen[c], "%s used twice", c)
		seen[c] = true
	}
}

func TestNewStyles(t *testing.T) {
	custom := &Theme{Accent: "#000000"}
	assert.Same(t, custom, NewStyles(custom).Theme())

	s := NewStyles(nil)
	require.NotNil(t, s.Theme())
	assert.Equal(t, DefaultTheme(), s.Theme())
	assert.Equal(t, DefaultTheme(), DefaultStyles().Theme())
}

func TestNewStyles_Attributes(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Title.GetBold())
	assert.True(t, s.Selected.GetBold())
	assert.True(t, s.Comment.GetItalic())
	assert.True(t, s.Stray.GetStrikethrough())
	assert.Equal(t, lipgloss.Color("#7C3AED"), s.Selected.GetBackground())
	assert.Equal(t, lipgloss.Color("#F38BA8"), s.Error.GetForeground())
	assert.Equal(t, lipgloss.RoundedBorder(), s.Pane.GetBorderStyle())
}

func TestStyles_Node(t *testing.T) {
	s := DefaultStyles()

	tests := []struct {
		typ  markup.NodeType
		want lipgloss.Style
	}{
		{markup.RootNode, s.Title},
		{markup.ElementNode, s.Tag},
		{markup.VoidNode, s.Tag},
		{markup.OpaqueNode, s.Opaque},
		{markup.TextNode, s.Text},
		{markup.CommentNode, s.Comment},
		{markup.StrayNode, s.Stray},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, s.Node(tt.typ))
		})
	}
}
