package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseCmd_Use(t *testing.T) {
	assert.Equal(t, "browse [file]", browseCmd.Use)
}

func TestBrowseCmd_TooManyArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "browse", "a.html", "b.html")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestBrowseCmd_RequiresMarkupService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	markupService = nil

	_, err := execute(t, "", "browse")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "markup service not configured")
}

func TestBrowseCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "browse", "/does/not/exist.html")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read /does/not/exist.html")
}
