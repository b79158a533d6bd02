package tui

import "errors"

// ErrMissingMarkupService is returned when the markup service is not provided.
var ErrMissingMarkupService = errors.New("tui: markup service is required")

// ErrInvalidPorts is returned when no ports are provided.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
