// Package migrations holds the versioned schema of the document store.
package migrations

import "embed"

// FS holds the NNN_name.up.sql and NNN_name.down.sql scripts.
//
//go:embed *.sql
var FS embed.FS
