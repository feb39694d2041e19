package testutil

import (
	"errors"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/settings"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// MockSettingsProvider is a mock implementation of ports.SettingsProvider for testing.
type MockSettingsProvider struct {
	GetSettingsFunc func() (settings.Settings, error)
}

func (m *MockSettingsProvider) GetSettings() (settings.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	return settings.Settings{}, errors.New("MockSettingsProvider: GetSettingsFunc not implemented")
}

var _ ports.SettingsProvider = (*MockSettingsProvider)(nil)
