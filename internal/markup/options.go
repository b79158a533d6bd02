package markup

import (
	"slices"
	"strings"
)

// DefaultRootTag is the tag given to the root node returned by Parse.
const DefaultRootTag = "html"

// TagSet is a set of lower-cased tag names.
type TagSet map[string]struct{}

// NewTagSet builds a set from tag names, lower-casing each one.
func NewTagSet(names ...string) TagSet {
	s := make(TagSet, len(names))
	for _, name := range names {
		s[strings.ToLower(name)] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s TagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set members in sorted order.
func (s TagSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s TagSet) clone() TagSet {
	c := make(TagSet, len(s))
	for name := range s {
		c[name] = struct{}{}
	}
	return c
}

// Options configures Parse. Build one with DefaultOptions and derive
// variants with the With methods; each returns a copy, so a value can be
// shared between parses without being mutated.
type Options struct {
	RootTag    string
	VoidTags   TagSet
	OpaqueTags TagSet
	InlineTags TagSet
}

// DefaultOptions returns a fresh configuration with the standard HTML tag
// lists. Every call allocates new sets.
func DefaultOptions() *Options {
	return &Options{
		RootTag:    DefaultRootTag,
		VoidTags:   NewTagSet(voidTags...),
		OpaqueTags: NewTagSet(opaqueTags...),
		InlineTags: NewTagSet(inlineTags...),
	}
}

// Clone returns a deep copy of o.
func (o *Options) Clone() *Options {
	return &Options{
		RootTag:    o.RootTag,
		VoidTags:   o.VoidTags.clone(),
		OpaqueTags: o.OpaqueTags.clone(),
		InlineTags: o.InlineTags.clone(),
	}
}

// WithRootTag returns a copy of o using tag for the root node.
func (o *Options) WithRootTag(tag string) *Options {
	c := o.Clone()
	c.RootTag = strings.ToLower(tag)
	return c
}

// WithVoidTags returns a copy of o with extra void tags.
func (o *Options) WithVoidTags(names ...string) *Options {
	c := o.Clone()
	for name := range NewTagSet(names...) {
		c.VoidTags[name] = struct{}{}
	}
	return c
}

// WithOpaqueTags returns a copy of o with extra opaque tags.
func (o *Options) WithOpaqueTags(names ...string) *Options {
	c := o.Clone()
	for name := range NewTagSet(names...) {
		c.OpaqueTags[name] = struct{}{}
	}
	return c
}

// WithInlineTags returns a copy of o with extra inline tags.
func (o *Options) WithInlineTags(names ...string) *Options {
	c := o.Clone()
	for name := range NewTagSet(names...) {
		c.InlineTags[name] = struct{}{}
	}
	return c
}
