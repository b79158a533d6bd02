package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, `&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&#39;s&lt;/a&gt;`,
		Escape(`<a href="x">Tom & Jerry's</a>`))
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"all five", "&amp;&lt;&gt;&quot;&#39;", `&<>"'`},
		{"unknown entity kept", "&copy; &nbsp;", "&copy; &nbsp;"},
		{"single pass", "&amp;lt;", "&lt;"},
		{"plain", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}

func TestEscapeUnescape_Canonical(t *testing.T) {
	for _, s := range []string{`a & b`, `a &amp; b`, `"quoted"`, `&quot;quoted&quot;`} {
		canonical := Escape(Unescape(s))
		assert.Equal(t, canonical, Escape(Unescape(canonical)), s)
	}
}
