package domain

import "errors"

// Sentinel errors shared across the core and adapters. Wrap them with
// fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType means no normaliser claims a MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrWatcherClosed is returned by Watch after Close.
	ErrWatcherClosed = errors.New("watcher closed")
)
