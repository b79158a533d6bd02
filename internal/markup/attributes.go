package markup

// attrState is a state of the attribute tokenizer.
// https://html.spec.whatwg.org/#before-attribute-name-state
type attrState int

const (
	beforeName attrState = iota
	inName
	afterName
	beforeValue
	doubleQuoted
	singleQuoted
	unquoted
)

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// isControl reports C0 controls and U+007F..U+009F.
func isControl(r rune) bool {
	return r <= 0x1f || (r >= 0x7f && r <= 0x9f)
}

func isInvalidName(r rune) bool {
	switch r {
	case '"', '\'', '=', '<', '>', '/':
		return true
	}
	return isControl(r)
}

func isInvalidValue(r rune) bool {
	return r == '`' || isInvalidName(r)
}

// ParseAttributes tokenizes the attribute text of an opening tag, the part
// between the tag name and the closing '>' or "/>".
//
// Tokenization stops at the first '/' or '>' outside a quoted value. An
// attribute left inside an unterminated quote is dropped. On a character
// that is not allowed in a name or unquoted value it returns an
// *AttributeError together with every attribute committed so far.
func ParseAttributes(text string) (*AttributeMap, error) {
	attrs := NewAttributeMap()
	chars := []rune(text)

	state := beforeName
	var name, value []rune

	commit := func() {
		attrs.Set(string(name), string(value))
	}
	fail := func(kind error, i int) (*AttributeMap, error) {
		return attrs, &AttributeError{Kind: kind, Offset: i, Char: chars[i]}
	}

scan:
	for i := 0; i < len(chars); i++ {
		char := chars[i]
		switch state {
		case beforeName:
			switch {
			case char == '/' || char == '>':
				break scan
			case isASCIIWhitespace(char):
			case isInvalidName(char):
				return fail(ErrAttrNameInvalid, i)
			default:
				name = append(name[:0], char)
				value = value[:0]
				state = inName
			}
		case inName:
			switch {
			case char == '/' || char == '>':
				break scan
			case char == '=':
				state = beforeValue
			case isASCIIWhitespace(char):
				state = afterName
			case isInvalidName(char):
				return fail(ErrAttrNameInvalid, i)
			default:
				name = append(name, char)
			}
		case afterName:
			switch {
			case char == '=':
				state = beforeValue
			case isASCIIWhitespace(char):
			default:
				// Boolean attribute; read char again as the next name.
				commit()
				state = beforeName
				i--
			}
		case beforeValue:
			switch {
			case char == '\'':
				state = singleQuoted
			case char == '"':
				state = doubleQuoted
			case isASCIIWhitespace(char):
			case isInvalidValue(char):
				return fail(ErrAttrValueInvalid, i)
			default:
				value = append(value, char)
				state = unquoted
			}
		case doubleQuoted, singleQuoted:
			quote := '"'
			if state == singleQuoted {
				quote = '\''
			}
			if char == quote {
				commit()
				state = beforeName
			} else {
				value = append(value, char)
			}
		case unquoted:
			switch {
			case char == '/' || char == '>':
				commit()
				state = beforeName
				break scan
			case isASCIIWhitespace(char):
				commit()
				state = beforeName
			case isInvalidValue(char):
				return fail(ErrAttrValueInvalid, i)
			default:
				value = append(value, char)
			}
		}
	}

	switch state {
	case inName:
		value = value[:0]
		commit()
	case unquoted:
		commit()
	}
	return attrs, nil
}
