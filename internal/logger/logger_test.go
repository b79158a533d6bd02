package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture enables verbose output into a buffer and restores the defaults
// when the test ends.
func capture(t *testing.T, enabled bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(enabled)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestPackageLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] message 42\n"},
		{"info", Info, "[INFO] message 42\n"},
		{"warn", Warn, "[WARN] message 42\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log("message %d", 42)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("test message")
	For("parser").Warn("test message")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Indexing")

	assert.Equal(t, "\n=== Indexing ===\n", buf.String())
}

func TestFor_PrefixesComponent(t *testing.T) {
	buf := capture(t, true)

	l := For("markup")
	l.Debug("<%s> skipped", "p")
	l.Info("parsed")
	l.Warn("stray")

	assert.Equal(t,
		"[DEBUG] markup: <p> skipped\n[INFO] markup: parsed\n[WARN] markup: stray\n",
		buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	buf := capture(t, true)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			For("worker").Debug("concurrent %d", i)
			IsVerbose()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("\n")))
}
