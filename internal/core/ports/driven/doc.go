// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: Transforms raw HTML into an indexed document
//   - NormaliserRegistry: Selects the normaliser for a MIME type
//   - PostProcessorPipeline: Fills excerpts and produces chunks
//   - DocumentStore: Document and chunk persistence (memory or SQLite)
//   - ConfigStore: Application configuration (TOML)
//   - DocumentLoader: Reads files to index from disk
//
// # Optional Interfaces
//
//   - FileWatcher: Reports file changes. Only the watch command needs it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
