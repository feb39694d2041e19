package ports

import "github.com/AntonioJCosta/pidigits/internal/core/domain/settings"

// SettingsProvider defines the interface for sourcing user settings,
// like a configuration file.
type SettingsProvider interface {
	// GetSettings loads the settings, falling back to defaults when no source exists.
	GetSettings() (settings.Settings, error)
}
