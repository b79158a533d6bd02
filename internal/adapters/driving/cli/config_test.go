package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, cmd := range configCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "set", "keys", "wizard"}, names)
}

func TestConfigShowCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "config")

	require.NoError(t, err)
	assert.Contains(t, out, "[excerpt]")
	assert.Contains(t, out, "max_length = 300")
	assert.Contains(t, out, "root_tag = 'html'")
}

func TestConfigSetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "config", "set", "excerpt.max_length", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "Set excerpt.max_length")

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "max_length = 120")

	out, err = execute(t, "", "config", "show", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "max_length = 300")
}

func TestConfigSetCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "config", "set", "excerpt.colour", "red")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "", "config", "set", "chunker.chunk_size", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigKeysCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "config", "set", "parser.opaque_tags", "x-raw,my-code")
	require.NoError(t, err)

	out, err := execute(t, "", "config", "keys")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(settingsService.Keys()))
	assert.Contains(t, out, "parser.opaque_tags")
	assert.Contains(t, out, "x-raw,my-code")
	assert.Contains(t, out, "watch.burst")
}

func TestConfigWizardCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	keys := settingsService.Keys()
	require.Equal(t, "parser.root_tag", keys[0])
	input := "doc\n" + strings.Repeat("\n", len(keys)-1)

	out, err := execute(t, input, "config", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "parser.root_tag [html]: ")
	assert.Contains(t, out, "1 settings changed.")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "doc", settings.Parser.RootTag)
}

func TestConfigWizardCmd_InvalidAnswerIsReported(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// Answer every prompt with a value only some keys accept.
	input := strings.Repeat("abc\n", len(settingsService.Keys()))

	out, err := execute(t, input, "config", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "excerpt.max_length")
	assert.Contains(t, out, "invalid input")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "a,b", formatValue([]any{"a", "b"}))
	assert.Equal(t, "", formatValue([]any{}))
	assert.Equal(t, "300", formatValue(int64(300)))
}
