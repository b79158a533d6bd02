package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/markup"
)

func newMarkupService(values map[string]any) *MarkupService {
	return NewMarkupService(NewSettingsService(memory.NewConfigStore(values)))
}

func TestMarkupService_Parse(t *testing.T) {
	root := newMarkupService(map[string]any{KeyParserRootTag: "doc"}).Parse("<p>x</p>")
	assert.Equal(t, "doc", root.Tag())
	assert.Equal(t, 1, root.Len())
}

func TestMarkupService_ParseUsesConfiguredTags(t *testing.T) {
	s := newMarkupService(map[string]any{KeyParserOpaqueTags: []string{"x-raw"}})

	root := s.Parse("<x-raw><b>kept</b></x-raw>")
	require.Equal(t, 1, root.Len())
	assert.Equal(t, markup.OpaqueNode, root.FirstChild().Type())
}

func TestMarkupService_InvalidSettingsFallBack(t *testing.T) {
	s := newMarkupService(map[string]any{KeyParserRootTag: ""})
	assert.Equal(t, markup.DefaultRootTag, s.Parse("x").Tag())
}

func TestMarkupService_Render(t *testing.T) {
	s := newMarkupService(nil)

	assert.Equal(t, "<p>a</p><p>b</p>", s.Render("<P>a<p>b", markup.RenderOptions{}))
	assert.Equal(t, "<!-- c --><p>a</p>", s.Render("<!-- c --><p>a", markup.RenderOptions{Comments: true}))
}

func TestMarkupService_Text(t *testing.T) {
	assert.Equal(t, "Title Body text", newMarkupService(nil).Text("<h1>Title</h1><p>Body <b>text</b></p>"))
}

func TestMarkupService_Excerpt(t *testing.T) {
	html := "<p>one two three four five six</p>"

	s := newMarkupService(map[string]any{KeyExcerptMaxLength: 10, KeyExcerptSuffix: "~"})
	assert.Equal(t, "one two ~", s.Excerpt(html, driving.ExcerptRequest{}))

	suffix := ""
	assert.Equal(t, "one two three", s.Excerpt(html, driving.ExcerptRequest{MaxLength: 15, Suffix: &suffix}))
}

func TestMarkupService_Attributes(t *testing.T) {
	s := newMarkupService(nil)
	html := `<body><div id="a"></div><div class="x &amp; y"><img src="i.png" alt></div></body>`

	all := s.Attributes(html, "")
	require.Len(t, all, 4)
	assert.Equal(t, "body", all[0].Tag)
	assert.Empty(t, all[0].Attributes)

	assert.Equal(t, "html > body > div[1]", all[1].Path)
	assert.Equal(t, []driving.Attribute{{Name: "id", Value: "a"}}, all[1].Attributes)

	assert.Equal(t, "html > body > div[2]", all[2].Path)
	assert.Equal(t, []driving.Attribute{{Name: "class", Value: "x & y"}}, all[2].Attributes)

	assert.Equal(t, "html > body > div[2] > img", all[3].Path)
	assert.Equal(t, []driving.Attribute{{Name: "src", Value: "i.png"}, {Name: "alt", Value: ""}}, all[3].Attributes)

	imgs := s.Attributes(html, "IMG")
	require.Len(t, imgs, 1)
	assert.Equal(t, "img", imgs[0].Tag)

	assert.Empty(t, s.Attributes(html, "table"))
}

func TestMarkupService_AttributesPathIgnoresStraysAndComments(t *testing.T) {
	s := newMarkupService(nil)

	paras := s.Attributes(`<p>1</p></p><!--p--><p>2</p>`, "p")
	require.Len(t, paras, 2)
	assert.Equal(t, "html > p[1]", paras[0].Path)
	assert.Equal(t, "html > p[2]", paras[1].Path)

	single := s.Attributes(`</div><div id="only"></div>`, "div")
	require.Len(t, single, 1)
	assert.Equal(t, "html > div", single[0].Path)
}
func TestMarkupService_AttributesError(t *testing.T) {
	found := newMarkupService(nil).Attributes(`<a href="x" b<c>`, "a")

	require.Len(t, found, 1)
	assert.Equal(t, []driving.Attribute{{Name: "href", Value: "x"}}, found[0].Attributes)
	assert.NotEmpty(t, found[0].Error)
}
