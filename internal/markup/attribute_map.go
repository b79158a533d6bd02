package markup

import (
	"iter"
	"slices"
	"strings"
)

// AttributeMap holds the attributes of one tag.
//
// Names are case-insensitive and stored lower-cased. Values are stored in
// canonical escaped form, Escape(Unescape(v)), so a value may be set either
// raw or pre-escaped and still compare equal. Entries keep the order in
// which their name was first set.
type AttributeMap struct {
	names  []string
	values map[string]string
}

// NewAttributeMap returns a map holding pairs, given as name, value,
// name, value... A trailing name without a value is set to "".
func NewAttributeMap(pairs ...string) *AttributeMap {
	m := &AttributeMap{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		m.Set(pairs[i], value)
	}
	return m
}

// Set stores value under name, replacing any existing value.
func (m *AttributeMap) Set(name, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	key := strings.ToLower(name)
	if _, ok := m.values[key]; !ok {
		m.names = append(m.names, key)
	}
	m.values[key] = Escape(Unescape(value))
}

// Get returns the decoded value for name.
func (m *AttributeMap) Get(name string) (string, bool) {
	v, ok := m.GetRaw(name)
	if !ok {
		return "", false
	}
	return Unescape(v), true
}

// GetRaw returns the stored, escaped value for name.
func (m *AttributeMap) GetRaw(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[strings.ToLower(name)]
	return v, ok
}

// Has reports whether name is set.
func (m *AttributeMap) Has(name string) bool {
	_, ok := m.GetRaw(name)
	return ok
}

// Delete removes name and reports whether it was present.
func (m *AttributeMap) Delete(name string) bool {
	if m == nil {
		return false
	}
	key := strings.ToLower(name)
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == key })
	return true
}

// Len returns the number of attributes.
func (m *AttributeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Keys returns the attribute names in order.
func (m *AttributeMap) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.names)
}

// All yields name and decoded value pairs in order.
func (m *AttributeMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name, raw := range m.AllRaw() {
			if !yield(name, Unescape(raw)) {
				return
			}
		}
	}
}

// AllRaw yields name and stored value pairs in order.
func (m *AttributeMap) AllRaw() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Values are re-escaped on the way in.
func (m *AttributeMap) Clone() *AttributeMap {
	c := &AttributeMap{values: make(map[string]string, m.Len())}
	for name, value := range m.AllRaw() {
		c.Set(name, value)
	}
	return c
}

// String renders the attributes as they appear inside a tag.
//
// Boolean attributes render as a bare name. Values are written in double
// quotes, or single quotes when the value contains a double quote. A value
// holding both quote characters keeps double quotes and writes " as &quot;.
func (m *AttributeMap) String() string {
	var b strings.Builder
	for name, value := range m.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		if value == "" {
			continue
		}
		value = attrEscaper.Replace(value)
		switch {
		case !strings.Contains(value, `"`):
			b.WriteString(`="` + value + `"`)
		case !strings.Contains(value, "'"):
			b.WriteString(`='` + value + `'`)
		default:
			b.WriteString(`="` + strings.ReplaceAll(value, `"`, "&quot;") + `"`)
		}
	}
	return b.String()
}
