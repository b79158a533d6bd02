package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/hyperless/internal/markup"
)

// Excerpt defaults.
const (
	DefaultMaxLength = 300
	DefaultSuffix    = "[…]"
)

var defaultEndChars = []string{".", "!", "?"}

// DefaultEndChars returns the characters that end a sentence by default.
func DefaultEndChars() []string { return append([]string(nil), defaultEndChars...) }

// minFill is the share of MaxLength a sentence cut must fill before it is
// preferred over cutting at a word.
const minFill = 0.8

// ExcerptOptions configures Excerpt. Start from DefaultExcerptOptions;
// an empty Suffix is honoured and means no truncation marker.
type ExcerptOptions struct {
	// MaxLength is the target length in characters. Zero or less uses
	// DefaultMaxLength.
	MaxLength int
	// Suffix is appended when the text is cut.
	Suffix string
	// EndChars end a sentence. Empty uses DefaultEndChars.
	EndChars []string
	// Parse configures the HTML parser. Nil uses markup.DefaultOptions.
	Parse *markup.Options
}

// DefaultExcerptOptions returns the default excerpt configuration.
func DefaultExcerptOptions() ExcerptOptions {
	return ExcerptOptions{
		MaxLength: DefaultMaxLength,
		Suffix:    DefaultSuffix,
		EndChars:  DefaultEndChars(),
	}
}

// Excerpt strips html and shortens the text to about opts.MaxLength
// characters.
func Excerpt(html string, opts ExcerptOptions) string {
	return ExcerptText(StripTags(markup.Parse(html, opts.Parse)), opts)
}

// ExcerptText shortens already extracted text.
//
// Text shorter than MaxLength is returned as is. Otherwise the text is cut
// after the last sentence end within MaxLength, provided that keeps at
// least 80% of MaxLength. Failing that, whole words are kept while they
// fit. The suffix is appended to a cut text.
func ExcerptText(text string, opts ExcerptOptions) string {
	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	endChars := opts.EndChars
	if len(endChars) == 0 {
		endChars = defaultEndChars
	}

	chars := []rune(text)
	if len(chars) < maxLength {
		return text
	}

	head := string(chars[:maxLength])
	end := -1
	for _, char := range endChars {
		if char == "" {
			continue
		}
		if i := strings.LastIndex(head, char); i >= 0 {
			end = max(end, utf8.RuneCountInString(head[:i+len(char)]))
		}
	}
	// A sentence end at the very first character does not count.
	if end > 1 && float64(end) > float64(maxLength)*minFill {
		return strings.TrimSpace(string(chars[:end]) + " " + opts.Suffix)
	}

	var b strings.Builder
	length := 0
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		if length+n > maxLength {
			break
		}
		b.WriteString(word)
		b.WriteByte(' ')
		length += n + 1
	}
	return strings.TrimSpace(b.String() + opts.Suffix)
}
