package postprocessors

import (
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/postprocessors/chunker"
	"github.com/custodia-labs/hyperless/internal/postprocessors/excerpt"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register("chunker", buildChunker)
	r.Register("excerpt", buildExcerpt)
}

// DefaultRegistry returns a registry holding the built-in processors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildChunker creates a chunker processor from generic config.
// Supported config keys:
//   - chunk_size (int): Characters per chunk (default: 1000)
//   - overlap (int): Overlapping characters between chunks (default: 200)
func buildChunker(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []chunker.Option

	if size := getIntFromConfig(cfg, "chunk_size"); size > 0 {
		opts = append(opts, chunker.WithChunkSize(size))
	}
	if _, ok := cfg["overlap"]; ok {
		opts = append(opts, chunker.WithOverlap(getIntFromConfig(cfg, "overlap")))
	}

	return chunker.New(opts...), nil
}

// buildExcerpt creates an excerpt processor from generic config.
// Supported config keys:
//   - max_length (int): Target excerpt length (default: 300)
//   - suffix (string): Truncation marker (default: "[…]")
//   - end_chars ([]string): Sentence terminators (default: . ! ?)
func buildExcerpt(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []excerpt.Option

	if length := getIntFromConfig(cfg, "max_length"); length > 0 {
		opts = append(opts, excerpt.WithMaxLength(length))
	}
	if suffix, ok := cfg["suffix"].(string); ok {
		opts = append(opts, excerpt.WithSuffix(suffix))
	}
	if chars := getStringsFromConfig(cfg, "end_chars"); len(chars) > 0 {
		opts = append(opts, excerpt.WithEndChars(chars...))
	}

	return excerpt.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	switch v := cfg[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// getStringsFromConfig extracts a string list from generic config map.
func getStringsFromConfig(cfg map[string]any, key string) []string {
	switch v := cfg[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
