package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeInput = "<div id=\"main\">\n  <p>Hello</p>\n  <!-- note -->\n</div></span>"

func TestTreeCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, treeInput, "tree")

	require.NoError(t, err)
	assert.Equal(t, `ROOT html
  ELEMENT div
    ELEMENT p
      TEXT "Hello"
`, out)
}

func TestTreeCmd_CommentsAndStrays(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, treeInput, "tree", "--comments", "--strays")

	require.NoError(t, err)
	assert.Equal(t, `ROOT html
  ELEMENT div
    ELEMENT p
      TEXT "Hello"
    COMMENT "<!-- note -->"
  STRAY </span>
`, out)
}

func TestTreeCmd_All(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "<p>a</p> <!--c-->", "tree", "--all")

	require.NoError(t, err)
	assert.Equal(t, `ROOT html
  ELEMENT p
    TEXT "a"
  TEXT ""
  COMMENT "<!--c-->"
`, out)
}

func TestTreeCmd_OpaqueContent(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "<script>if (a < b) {}</script>", "tree", "--no-color")

	require.NoError(t, err)
	assert.Equal(t, `ROOT html
  OPAQUE script
    TEXT "if (a < b) {}"
`, out)
}
