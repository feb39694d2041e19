package configfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/settings"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "pidigits"
	configFileName = "config.yaml"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/pidigits/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
	explicit bool
}

// NewYAMLProvider creates a new YAMLProvider.
// An empty filePath selects DefaultConfigPath; a missing default file is not an error,
// while a missing file that was named explicitly is.
func NewYAMLProvider(filePath string) ports.SettingsProvider {
	if filePath == "" {
		return &YAMLProvider{filePath: DefaultConfigPath()}
	}
	return &YAMLProvider{filePath: filePath, explicit: true}
}

// Path returns the file the provider reads from.
func (p *YAMLProvider) Path() string {
	return p.filePath
}

// GetSettings reads the configured file on top of the defaults.
// Keys absent from the file keep their default values.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	s := settings.Default()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) && !p.explicit {
			return s, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}

	if len(bytes.TrimSpace(yamlFile)) == 0 {
		return s, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&s); err != nil {
		// A document holding only comments decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to parse settings file %s: %w", p.filePath, err)
	}

	if err := s.Validate(); err != nil {
		return settings.Settings{}, fmt.Errorf("settings file %s: %w", p.filePath, err)
	}
	return s, nil
}

var _ ports.SettingsProvider = (*YAMLProvider)(nil)
