/*
Package settings defines the user-tunable defaults read from the config file.
*/
package settings

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Report formats understood by the CLI.
const (
	FormatPlain    = "plain"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// DefaultInput is the file counted when no file is named on the command line.
const DefaultInput = "corruptedDigitsOfPi.txt"

// Corruption controls how noise is inserted by the corrupt command.
type Corruption struct {
	Probability float64 `yaml:"probability"`
	MinChar     int     `yaml:"min_char"`
	MaxChar     int     `yaml:"max_char"`
}

// Settings holds the values loaded from the config file.
type Settings struct {
	DefaultInput string     `yaml:"default_input"`
	Format       string     `yaml:"format"`
	Corruption   Corruption `yaml:"corruption"`
}

// Default returns the settings used when no config file is present.
func Default() Settings {
	return Settings{
		DefaultInput: DefaultInput,
		Format:       FormatPlain,
		Corruption: Corruption{
			Probability: 0.1,
			MinChar:     58,
			MaxChar:     127,
		},
	}
}

// ErrInvalidSettings is wrapped by every error returned from Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// IsKnownFormat reports whether format names a supported report format.
func IsKnownFormat(format string) bool {
	switch format {
	case FormatPlain, FormatTable, FormatMarkdown, FormatYAML:
		return true
	}
	return false
}

// Validate checks that every field holds a usable value.
func (s Settings) Validate() error {
	if !IsKnownFormat(s.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidSettings, s.Format)
	}
	return s.Corruption.Validate()
}

// Validate checks the probability and the noise character range.
func (c Corruption) Validate() error {
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("%w: corruption probability %v is outside [0, 1]", ErrInvalidSettings, c.Probability)
	}
	if c.MinChar < 0 {
		return fmt.Errorf("%w: min_char %d is negative", ErrInvalidSettings, c.MinChar)
	}
	if c.MaxChar > utf8.MaxRune {
		return fmt.Errorf("%w: max_char %d is not a valid character", ErrInvalidSettings, c.MaxChar)
	}
	if c.MinChar > c.MaxChar {
		return fmt.Errorf("%w: min_char %d is greater than max_char %d", ErrInvalidSettings, c.MinChar, c.MaxChar)
	}
	return nil
}
