// Package normalisers provides implementations of the Normaliser interface
// for the document formats hyperless indexes, and the registry that
// dispatches raw documents to them by MIME type.
package normalisers
