// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewTree is the node tree explorer.
	ViewTree ViewType = iota
	// ViewDocuments lists indexed documents.
	ViewDocuments
	// ViewDocDetails shows document metadata.
	ViewDocDetails
	// ViewDocContent shows the stored text of a document.
	ViewDocContent
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewTree:
		return "tree"
	case ViewDocuments:
		return "documents"
	case ViewDocDetails:
		return "doc_details"
	case ViewDocContent:
		return "doc_content"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// NodeCounted reports how many nodes the tree shows.
type NodeCounted struct {
	Visible int
	Total   int
}

// DocumentsLoaded carries the list of indexed documents.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentSelected is sent when a document is opened from the list.
type DocumentSelected struct {
	Document domain.Document
}

// DocumentContentLoaded carries the stored text of a document.
type DocumentContentLoaded struct {
	DocumentID string
	Content    string
	Err        error
}

// DocumentDetailsLoaded carries the metadata of a document.
type DocumentDetailsLoaded struct {
	DocumentID string
	Details    *driving.DocumentDetails
	Err        error
}

// DocumentDeleted signals a document was removed from the index.
type DocumentDeleted struct {
	DocumentID string
	Err        error
}
