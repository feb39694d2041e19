/*
Package reportformat renders frequency reports in the formats offered by the CLI.
*/
package reportformat

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/settings"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// ErrUnknownFormat is returned by New for a format name it does not know.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the accepted format names, default first.
var Formats = []string{settings.FormatPlain, settings.FormatTable, settings.FormatMarkdown, settings.FormatYAML}

// New returns the writer for format.
func New(format string) (ports.ReportWriter, error) {
	switch format {
	case settings.FormatPlain:
		return NewPlainWriter(), nil
	case settings.FormatTable:
		return NewTableWriter(), nil
	case settings.FormatMarkdown:
		return NewMarkdownWriter(), nil
	case settings.FormatYAML:
		return NewYAMLWriter(), nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownFormat, format, Formats)
}
