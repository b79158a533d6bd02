package markup

// inlineTags lists the inline text-level elements.
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element#inline_text_semantics
var inlineTags = []string{
	"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "del",
	"dfn", "em", "i", "ins", "kbd", "mark", "q", "rp", "rt", "ruby", "s",
	"samp", "small", "span", "strong", "sub", "sup", "time", "u", "var",
	"wbr",
}

// voidTags lists the elements that never have children or a closing tag.
// https://developer.mozilla.org/en-US/docs/Glossary/Void_element
var voidTags = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input", "link",
	"meta", "param", "source", "track", "wbr",
}

// opaqueTags lists the elements whose content is kept verbatim.
var opaqueTags = []string{
	"code", "iframe", "math", "noscript", "object", "pre", "script",
	"style", "svg", "template", "textarea",
}

// listTags are the valid parents of an <li>.
var listTags = map[string]bool{"ol": true, "ul": true, "menu": true}

// InlineTags returns the default inline tag names.
func InlineTags() []string { return append([]string(nil), inlineTags...) }

// VoidTags returns the default void tag names.
func VoidTags() []string { return append([]string(nil), voidTags...) }

// OpaqueTags returns the default opaque tag names.
func OpaqueTags() []string { return append([]string(nil), opaqueTags...) }
