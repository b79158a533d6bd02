package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyParserRootTag    = "parser.root_tag"
	KeyParserVoidTags   = "parser.void_tags"
	KeyParserOpaqueTags = "parser.opaque_tags"
	KeyParserInlineTags = "parser.inline_tags"
	KeyExcerptMaxLength = "excerpt.max_length"
	KeyExcerptSuffix    = "excerpt.suffix"
	KeyExcerptEndChars  = "excerpt.end_chars"
	KeyChunkSize        = "chunker.chunk_size"
	KeyChunkOverlap     = "chunker.overlap"
	KeyWatchRate        = "watch.rate"
	KeyWatchBurst       = "watch.burst"
)

type keyKind int

const (
	kindString keyKind = iota
	kindList
	kindInt
	kindFloat
)

type settingKey struct {
	key  string
	kind keyKind
}

// settingKeys lists every key with the type of its value.
var settingKeys = []settingKey{
	{KeyParserRootTag, kindString},
	{KeyParserVoidTags, kindList},
	{KeyParserOpaqueTags, kindList},
	{KeyParserInlineTags, kindList},
	{KeyExcerptMaxLength, kindInt},
	{KeyExcerptSuffix, kindString},
	{KeyExcerptEndChars, kindList},
	{KeyChunkSize, kindInt},
	{KeyChunkOverlap, kindInt},
	{KeyWatchRate, kindFloat},
	{KeyWatchBurst, kindInt},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Unset keys take their
// default.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Parser: domain.ParserSettings{
			RootTag:    s.getString(KeyParserRootTag, defaults.Parser.RootTag),
			VoidTags:   s.configStore.GetStringSlice(KeyParserVoidTags),
			OpaqueTags: s.configStore.GetStringSlice(KeyParserOpaqueTags),
			InlineTags: s.configStore.GetStringSlice(KeyParserInlineTags),
		},
		Excerpt: domain.ExcerptSettings{
			MaxLength: s.getInt(KeyExcerptMaxLength, defaults.Excerpt.MaxLength),
			Suffix:    s.getString(KeyExcerptSuffix, defaults.Excerpt.Suffix),
			EndChars:  s.getStrings(KeyExcerptEndChars, defaults.Excerpt.EndChars),
		},
		Chunker: domain.ChunkerSettings{
			ChunkSize: s.getInt(KeyChunkSize, defaults.Chunker.ChunkSize),
			Overlap:   s.getInt(KeyChunkOverlap, defaults.Chunker.Overlap),
		},
		Watch: domain.WatchSettings{
			Rate:  s.getFloat(KeyWatchRate, defaults.Watch.Rate),
			Burst: s.getInt(KeyWatchBurst, defaults.Watch.Burst),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		KeyParserRootTag:    settings.Parser.RootTag,
		KeyParserVoidTags:   nonNil(settings.Parser.VoidTags),
		KeyParserOpaqueTags: nonNil(settings.Parser.OpaqueTags),
		KeyParserInlineTags: nonNil(settings.Parser.InlineTags),
		KeyExcerptMaxLength: settings.Excerpt.MaxLength,
		KeyExcerptSuffix:    settings.Excerpt.Suffix,
		KeyExcerptEndChars:  nonNil(settings.Excerpt.EndChars),
		KeyChunkSize:        settings.Chunker.ChunkSize,
		KeyChunkOverlap:     settings.Chunker.Overlap,
		KeyWatchRate:        settings.Watch.Rate,
		KeyWatchBurst:       settings.Watch.Burst,
	}
	for _, k := range settingKeys {
		if err := s.configStore.Set(k.key, values[k.key]); err != nil {
			return fmt.Errorf("save %s: %w", k.key, err)
		}
	}
	return nil
}

// Set parses and stores a single setting. Lists are comma separated.
func (s *SettingsService) Set(key, value string) error {
	i := slices.IndexFunc(settingKeys, func(k settingKey) bool { return k.key == key })
	if i < 0 {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	parsed, err := parseValue(settingKeys[i].kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	previous, existed := s.configStore.Get(key)
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if _, err := s.Get(); err != nil {
		if existed {
			_ = s.configStore.Set(key, previous)
		} else {
			_ = s.configStore.Set(key, defaultValue(key))
		}
		return err
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// ParseOptions builds parser options: the built-in tag lists extended by
// the configured ones.
func (s *SettingsService) ParseOptions() (*markup.Options, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return parseOptions(settings), nil
}

func parseOptions(settings *domain.Settings) *markup.Options {
	return markup.DefaultOptions().
		WithRootTag(settings.Parser.RootTag).
		WithVoidTags(settings.Parser.VoidTags...).
		WithOpaqueTags(settings.Parser.OpaqueTags...).
		WithInlineTags(settings.Parser.InlineTags...)
}

func parseValue(kind keyKind, value string) (any, error) {
	switch kind {
	case kindList:
		items := []string{}
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	case kindInt:
		return strconv.Atoi(strings.TrimSpace(value))
	case kindFloat:
		return strconv.ParseFloat(strings.TrimSpace(value), 64)
	default:
		return value, nil
	}
}

// defaultValue returns the stored form of a key's default.
func defaultValue(key string) any {
	d := domain.DefaultSettings()
	switch key {
	case KeyParserRootTag:
		return d.Parser.RootTag
	case KeyExcerptMaxLength:
		return d.Excerpt.MaxLength
	case KeyExcerptSuffix:
		return d.Excerpt.Suffix
	case KeyExcerptEndChars:
		return d.Excerpt.EndChars
	case KeyChunkSize:
		return d.Chunker.ChunkSize
	case KeyChunkOverlap:
		return d.Chunker.Overlap
	case KeyWatchRate:
		return d.Watch.Rate
	case KeyWatchBurst:
		return d.Watch.Burst
	default:
		return []string{}
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}
