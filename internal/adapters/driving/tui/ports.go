// Package tui provides an interactive terminal explorer for HTML trees and
// the document index. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Markup parses the document being browsed.
	Markup driving.MarkupService

	// Document lists and manages indexed documents. Optional.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Markup == nil {
		return ErrMissingMarkupService
	}
	return nil
}
