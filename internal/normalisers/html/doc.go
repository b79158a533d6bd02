// Package html provides a Normaliser implementation for HTML documents.
// It parses the document into a markup tree, drops the head and other
// non-content elements, and extracts readable text for indexing.
package html
