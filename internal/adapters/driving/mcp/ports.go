package mcp

import (
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Markup parses and transforms HTML.
	Markup driving.MarkupService

	// Document reads and updates the document index. Optional: without it
	// the index tool and document resources are not registered.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Markup == nil {
		return ErrMissingMarkupService
	}
	return nil
}
