package postprocessors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/postprocessors/excerpt"
)

// registryMockProcessor is a simple mock for testing registry functionality.
type registryMockProcessor struct {
	name string
}

func (m *registryMockProcessor) Name() string { return m.name }
func (m *registryMockProcessor) Process(_ context.Context, _ *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	return chunks, nil
}

func mockBuilder(name string) BuilderFunc {
	return func(_ map[string]any) (driven.PostProcessor, error) {
		return &registryMockProcessor{name: name}, nil
	}
}

func TestRegistry_RegisterAndHas(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Names())
	assert.False(t, r.Has("test"))

	r.Register("test", mockBuilder("test"))
	assert.True(t, r.Has("test"))
}

func TestRegistry_Build(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func(cfg map[string]any) (driven.PostProcessor, error) {
		name := "default"
		if n, ok := cfg["name"].(string); ok {
			name = n
		}
		return &registryMockProcessor{name: name}, nil
	})

	proc, err := r.Build("test", map[string]any{"name": "custom"})
	require.NoError(t, err)
	assert.Equal(t, "custom", proc.Name())

	_, err = r.Build("unknown", nil)
	assert.ErrorIs(t, err, ErrUnknownProcessor)
	assert.EqualError(t, err, "unknown processor: unknown")
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("gamma", mockBuilder("gamma"))
	r.Register("alpha", mockBuilder("alpha"))
	r.Register("beta", mockBuilder("beta"))

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, r.Names())
}

func TestRegisterDefaults(t *testing.T) {
	assert.Equal(t, []string{"chunker", "excerpt"}, DefaultRegistry().Names())
}

func TestBuildChunker(t *testing.T) {
	for _, cfg := range []map[string]any{nil, {"chunk_size": 500, "overlap": 100}, {"overlap": int64(0)}} {
		proc, err := DefaultRegistry().Build("chunker", cfg)
		require.NoError(t, err)
		assert.Equal(t, "chunker", proc.Name())
	}
}

func TestBuildExcerpt_WithConfig(t *testing.T) {
	proc, err := DefaultRegistry().Build("excerpt", map[string]any{
		"max_length": int64(40),
		"suffix":     "...",
		"end_chars":  []any{";", 7},
	})
	require.NoError(t, err)

	opts := proc.(*excerpt.Processor).Options()
	assert.Equal(t, 40, opts.MaxLength)
	assert.Equal(t, "...", opts.Suffix)
	assert.Equal(t, []string{";"}, opts.EndChars)
}

func TestBuildExcerpt_WithNilConfig(t *testing.T) {
	proc, err := DefaultRegistry().Build("excerpt", nil)
	require.NoError(t, err)

	opts := proc.(*excerpt.Processor).Options()
	assert.Equal(t, domain.DefaultExcerptMaxLength, opts.MaxLength)
	assert.Equal(t, domain.DefaultExcerptSuffix, opts.Suffix)
}

func TestGetIntFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      map[string]any
		expected int
	}{
		{"int value", map[string]any{"size": 100}, 100},
		{"int64 value", map[string]any{"size": int64(200)}, 200},
		{"float64 value", map[string]any{"size": float64(300)}, 300},
		{"string value", map[string]any{"size": "400"}, 0},
		{"missing key", map[string]any{"other": 100}, 0},
		{"nil config", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getIntFromConfig(tt.cfg, "size"))
		})
	}
}

func TestGetStringsFromConfig(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, getStringsFromConfig(map[string]any{"k": []string{"a", "b"}}, "k"))
	assert.Equal(t, []string{"a"}, getStringsFromConfig(map[string]any{"k": []any{"a", 1}}, "k"))
	assert.Nil(t, getStringsFromConfig(map[string]any{"k": "a"}, "k"))
	assert.Nil(t, getStringsFromConfig(nil, "k"))
}
