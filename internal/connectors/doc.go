// Package connectors holds the adapters that read documents from outside
// the index. The filesystem connector loads HTML files from disk and
// watches them for changes.
package connectors
