package driven

// ConfigStore holds settings under dotted keys such as "excerpt.max_length".
//
// The typed getters return the zero value when a key is missing or holds
// another type. Integer values are accepted by GetFloat and whole floats
// by GetInt, since TOML and JSON disagree on number types.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetFloat(key string) float64
	GetStringSlice(key string) []string

	// Keys lists the stored keys in sorted order.
	Keys() []string

	// Set stores value under key and persists it before returning.
	Set(key string, value any) error

	// Path names the backing file, or ":memory:".
	Path() string
}
