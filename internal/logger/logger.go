// Package logger provides verbose logging for hyperless.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show how documents are parsed and indexed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// write holds the exclusive lock so concurrent callers do not interleave
// on a shared writer.
func write(level, component, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	prefix := "[" + level + "] "
	if component != "" {
		prefix += component + ": "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { write("DEBUG", "", format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { write("INFO", "", format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { write("WARN", "", format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Logger prefixes every message with a component name.
// It shares the package-level verbosity and output.
type Logger struct {
	component string
}

// For returns a logger for the named component.
func For(component string) *Logger {
	return &Logger{component: component}
}

// Debug prints a component message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) { write("DEBUG", l.component, format, args...) }

// Info prints a component message if verbose mode is enabled.
func (l *Logger) Info(format string, args ...any) { write("INFO", l.component, format, args...) }

// Warn prints a component message if verbose mode is enabled.
func (l *Logger) Warn(format string, args ...any) { write("WARN", l.component, format, args...) }
