package markup

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeMap_SetGet(t *testing.T) {
	m := NewAttributeMap()
	m.Set("Data-Test", "a &amp; b")

	v, ok := m.Get("DATA-TEST")
	require.True(t, ok)
	assert.Equal(t, "a & b", v)

	raw, ok := m.GetRaw("data-test")
	require.True(t, ok)
	assert.Equal(t, "a &amp; b", raw)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestAttributeMap_RawAndEscapedInputMatch(t *testing.T) {
	a := NewAttributeMap("title", `say "hi"`)
	b := NewAttributeMap("title", `say &quot;hi&quot;`)

	rawA, _ := a.GetRaw("title")
	rawB, _ := b.GetRaw("title")
	assert.Equal(t, rawA, rawB)
}

func TestAttributeMap_OverwriteKeepsPosition(t *testing.T) {
	m := NewAttributeMap("a", "1", "b", "2")
	m.Set("A", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, maps.Collect(m.All()))
}

func TestAttributeMap_HasDelete(t *testing.T) {
	m := NewAttributeMap("id", "x", "class", "y")

	assert.True(t, m.Has("ID"))
	assert.True(t, m.Delete("Id"))
	assert.False(t, m.Has("id"))
	assert.False(t, m.Delete("id"))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"class"}, m.Keys())
}

func TestAttributeMap_NilSafe(t *testing.T) {
	var m *AttributeMap
	assert.Zero(t, m.Len())
	assert.False(t, m.Has("x"))
	assert.Nil(t, m.Keys())
	assert.Empty(t, maps.Collect(m.All()))
}

func TestAttributeMap_Clone(t *testing.T) {
	m := NewAttributeMap("a", "1")
	c := m.Clone()
	c.Set("a", "2")
	c.Set("b", "3")

	v, _ := m.Get("a")
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestAttributeMap_String(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  string
	}{
		{"empty", nil, ""},
		{"pair", []string{"id", "main"}, `id="main"`},
		{"boolean", []string{"hidden", ""}, `hidden`},
		{"mixed", []string{"a", "1", "b", "", "c", "3"}, `a="1" b c="3"`},
		{"double quote", []string{"title", `say "hi"`}, `title='say "hi"'`},
		{"both quotes", []string{"title", `it's "x"`}, `title="it's &quot;x&quot;"`},
		{"markup escaped", []string{"alt", "a<b & c>d"}, `alt="a&lt;b &amp; c&gt;d"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAttributeMap(tt.pairs...).String())
		})
	}
}

func TestAttributeMap_StringReparses(t *testing.T) {
	m := NewAttributeMap("a", `x"y`, "b", `it's "x"`, "c", "&copy;", "d", "")

	parsed, err := ParseAttributes(" " + m.String())
	require.NoError(t, err)
	assert.Equal(t, maps.Collect(m.All()), maps.Collect(parsed.All()))
}
