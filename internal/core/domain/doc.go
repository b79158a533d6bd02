// Package domain defines the core entities for hyperless.
//
// This package is part of the hexagonal architecture's innermost layer.
// Its only dependency outside the standard library is github.com/google/uuid
// for name-based IDs. It defines the fundamental types:
//
//   - Document: An indexed HTML document reduced to text
//   - Chunk: A fixed-size slice of a document's text
//   - RawDocument: Bytes read from disk before normalisation
//   - Settings: Parser, excerpt, chunker and watch configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages
// depend on domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any internal/ package
package domain
