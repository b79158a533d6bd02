package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		filename     string
		expectedMIME string
	}{
		{"file", "text/plain"},
		{"page.html", "text/html"},
		{"page.htm", "text/html"},
		{"PAGE.HTML", "text/html"},
		{"page.xhtml", "application/xhtml+xml"},
		{"notes.txt", "text/plain"},
		{"doc.md", "text/markdown"},
		{"doc.markdown", "text/markdown"},
		{"image.png", "image/png"},
		{"file.zzzzunknown", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expectedMIME, DetectMIMEType(tt.filename))
		})
	}

	t.Run("strips charset from mime type", func(t *testing.T) {
		for _, file := range []string{"file.css", "file.js"} {
			assert.NotContains(t, DetectMIMEType(file), ";")
		}
	})
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{".hidden", true},
		{"path/to/.hidden", true},
		{"/path/.hidden/file.html", true},
		{"file.html", false},
		{"/root/visible/file.html", false},
		{".", false},
		{"..", false},
		{"path/../file", false},
		{"", false},
		{"file.hidden", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHidden(tt.path))
		})
	}
}

func TestExtensionSet(t *testing.T) {
	assert.Equal(t, map[string]bool{".html": true, ".htm": true}, extensionSet(nil))
	assert.Equal(t, map[string]bool{".xhtml": true, ".txt": true}, extensionSet([]string{"XHTML", ".txt"}))
}
