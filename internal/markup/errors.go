package markup

import (
	"errors"
	"fmt"
)

// Attribute tokenizer error kinds. Match them with errors.Is.
var (
	// ErrAttrNameInvalid indicates a character that cannot start or
	// continue an attribute name.
	ErrAttrNameInvalid = errors.New("invalid attribute name")

	// ErrAttrValueInvalid indicates a character that cannot appear in an
	// unquoted attribute value.
	ErrAttrValueInvalid = errors.New("invalid unquoted attribute value")
)

// AttributeError reports where attribute tokenization stopped.
type AttributeError struct {
	// Kind is ErrAttrNameInvalid or ErrAttrValueInvalid.
	Kind error

	// Offset is the character (rune) offset of the offending character
	// within the attribute text.
	Offset int

	// Char is the offending character.
	Char rune
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%v: %q at character %d", e.Kind, e.Char, e.Offset)
}

func (e *AttributeError) Unwrap() error {
	return e.Kind
}
