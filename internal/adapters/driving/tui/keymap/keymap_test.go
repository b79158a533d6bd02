package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Help", km.Help, []string{"?"}},
		{"Back", km.Back, []string{"esc"}},
		{"Up", km.Up, []string{"up", "k"}},
		{"Down", km.Down, []string{"down", "j"}},
		{"Expand", km.Expand, []string{"right", "l"}},
		{"Collapse", km.Collapse, []string{"left", "h"}},
		{"Toggle", km.Toggle, []string{"enter", " "}},
		{"ExpandAll", km.ExpandAll, []string{"+"}},
		{"CollapseAll", km.CollapseAll, []string{"-"}},
		{"Comments", km.Comments, []string{"c"}},
		{"Strays", km.Strays, []string{"s"}},
		{"SwitchView", km.SwitchView, []string{"tab"}},
		{"Select", km.Select, []string{"enter"}},
		{"Reload", km.Reload, []string{"r"}},
		{"Delete", km.Delete, []string{"d"}},
		{"Filter", km.Filter, []string{"/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Key, "binding should have help key")
			assert.NotEmpty(t, tt.binding.Help().Desc, "binding should have help text")
		})
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.Len(t, bindings, 3)
	assert.Equal(t, km.SwitchView, bindings[0])
	assert.Equal(t, km.Help, bindings[1])
	assert.Equal(t, km.Quit, bindings[2])
}

func TestViewHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.TreeHelp(), km.Comments)
	assert.Contains(t, km.TreeHelp(), km.Strays)
	assert.Contains(t, km.DocumentsHelp(), km.Delete)
	assert.Contains(t, km.DocumentsHelp(), km.Reload)
	assert.Contains(t, km.DocumentsHelp(), km.Filter)
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 4)    // 4 groups
	assert.Len(t, bindings[0], 5) // movement
	assert.Len(t, bindings[1], 4) // tree display
	assert.Len(t, bindings[2], 5) // index
	assert.Len(t, bindings[3], 3) // Back, Help, Quit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("?", km.Help))
	assert.True(t, Matches("up", km.Up))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches(" ", km.Toggle))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.Help))
	assert.False(t, Matches("down", km.Up))
}
