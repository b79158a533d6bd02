// Package mcp provides an MCP (Model Context Protocol) server adapter for
// hyperless. It lets AI assistants parse and clean HTML and read the
// document index.
package mcp

import "errors"

// ErrMissingMarkupService is returned when the markup service is not provided.
var ErrMissingMarkupService = errors.New("mcp: markup service is required")
