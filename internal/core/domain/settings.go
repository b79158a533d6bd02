package domain

import "fmt"

// Setting defaults.
const (
	DefaultRootTag          = "html"
	DefaultExcerptMaxLength = 300
	DefaultExcerptSuffix    = "[…]"
	DefaultChunkSize        = 1000
	DefaultChunkOverlap     = 200
	DefaultWatchRate        = 2.0
	DefaultWatchBurst       = 4
)

// DefaultExcerptEndChars returns the default sentence terminators.
func DefaultExcerptEndChars() []string {
	return []string{".", "!", "?"}
}

// ParserSettings configures the HTML parser.
// Tag lists are added to the built-in HTML lists, never replace them.
type ParserSettings struct {
	// RootTag names the root node of every parsed tree.
	RootTag string `toml:"root_tag"`

	// VoidTags are extra tags that never have children.
	VoidTags []string `toml:"void_tags"`

	// OpaqueTags are extra tags whose content is kept verbatim.
	OpaqueTags []string `toml:"opaque_tags"`

	// InlineTags are extra tags that do not close an open paragraph.
	InlineTags []string `toml:"inline_tags"`
}

// ExcerptSettings configures excerpt generation.
type ExcerptSettings struct {
	// MaxLength is the target excerpt length in characters.
	MaxLength int `toml:"max_length"`

	// Suffix is appended to a shortened excerpt.
	Suffix string `toml:"suffix"`

	// EndChars end a sentence.
	EndChars []string `toml:"end_chars"`
}

// ChunkerSettings configures document chunking.
type ChunkerSettings struct {
	// ChunkSize is the target chunk length in characters.
	ChunkSize int `toml:"chunk_size"`

	// Overlap is the number of characters repeated between chunks.
	Overlap int `toml:"overlap"`
}

// WatchSettings configures the file watcher.
type WatchSettings struct {
	// Rate is the sustained number of re-index events per second.
	Rate float64 `toml:"rate"`

	// Burst is the number of events allowed at once.
	Burst int `toml:"burst"`
}

// Settings holds all user configuration.
type Settings struct {
	Parser  ParserSettings  `toml:"parser"`
	Excerpt ExcerptSettings `toml:"excerpt"`
	Chunker ChunkerSettings `toml:"chunker"`
	Watch   WatchSettings   `toml:"watch"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Parser: ParserSettings{RootTag: DefaultRootTag},
		Excerpt: ExcerptSettings{
			MaxLength: DefaultExcerptMaxLength,
			Suffix:    DefaultExcerptSuffix,
			EndChars:  DefaultExcerptEndChars(),
		},
		Chunker: ChunkerSettings{
			ChunkSize: DefaultChunkSize,
			Overlap:   DefaultChunkOverlap,
		},
		Watch: WatchSettings{
			Rate:  DefaultWatchRate,
			Burst: DefaultWatchBurst,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	switch {
	case s.Parser.RootTag == "":
		return fmt.Errorf("%w: parser.root_tag must not be empty", ErrInvalidInput)
	case s.Excerpt.MaxLength <= 0:
		return fmt.Errorf("%w: excerpt.max_length must be positive", ErrInvalidInput)
	case s.Chunker.ChunkSize <= 0:
		return fmt.Errorf("%w: chunker.chunk_size must be positive", ErrInvalidInput)
	case s.Chunker.Overlap < 0 || s.Chunker.Overlap >= s.Chunker.ChunkSize:
		return fmt.Errorf("%w: chunker.overlap must be between 0 and chunk_size", ErrInvalidInput)
	case s.Watch.Rate <= 0:
		return fmt.Errorf("%w: watch.rate must be positive", ErrInvalidInput)
	case s.Watch.Burst <= 0:
		return fmt.Errorf("%w: watch.burst must be positive", ErrInvalidInput)
	}
	return nil
}

// PipelineConfig holds post-processor pipeline configuration.
// Uses generic map-based config so new processors can be added
// without modifying this struct.
type PipelineConfig struct {
	// Processors is the ordered list of processor names to run.
	Processors []string

	// ProcessorConfigs holds per-processor configuration as generic maps.
	// Key is processor name, value is processor-specific config.
	ProcessorConfigs map[string]map[string]any
}

// GetProcessorConfig returns config for a specific processor, or nil if not set.
func (c *PipelineConfig) GetProcessorConfig(name string) map[string]any {
	if c.ProcessorConfigs == nil {
		return nil
	}
	return c.ProcessorConfigs[name]
}

// PipelineConfig builds the post-processor pipeline from the settings:
// an excerpt followed by chunking.
func (s Settings) PipelineConfig() PipelineConfig {
	endChars := make([]any, len(s.Excerpt.EndChars))
	for i, c := range s.Excerpt.EndChars {
		endChars[i] = c
	}
	return PipelineConfig{
		Processors: []string{"excerpt", "chunker"},
		ProcessorConfigs: map[string]map[string]any{
			"excerpt": {
				"max_length": s.Excerpt.MaxLength,
				"suffix":     s.Excerpt.Suffix,
				"end_chars":  endChars,
			},
			"chunker": {
				"chunk_size": s.Chunker.ChunkSize,
				"overlap":    s.Chunker.Overlap,
			},
		},
	}
}

// DefaultPipelineConfig returns the default pipeline configuration.
func DefaultPipelineConfig() PipelineConfig {
	return DefaultSettings().PipelineConfig()
}
