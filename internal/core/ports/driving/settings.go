package driving

import (
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	// Returns domain.ErrInvalidInput if the stored settings are unusable.
	Get() (*domain.Settings, error)

	// Save validates and persists application settings.
	Save(settings *domain.Settings) error

	// Set parses value for the setting key and stores it. The previous
	// value is restored if the result does not validate.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// ParseOptions builds parser options from the current settings.
	ParseOptions() (*markup.Options, error)
}
