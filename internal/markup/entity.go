package markup

import "strings"

var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	unescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// Escape encodes the five HTML special characters & < > " and '.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape decodes the five entities produced by Escape.
// Any other entity is left untouched.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
