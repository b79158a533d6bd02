package domain

// RawDocument is loaded content waiting for a normaliser.
type RawDocument struct {
	URI string

	// MIMEType selects the normaliser and may carry parameters such as
	// "; charset=utf-8".
	MIMEType string
	Content  []byte

	// Metadata is copied onto the document, e.g. the file's mod time.
	Metadata map[string]any
}
