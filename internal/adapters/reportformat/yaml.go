package reportformat

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// yamlReport is the document written by YAMLWriter.
type yamlReport struct {
	Source  string            `yaml:"source"`
	Total   int               `yaml:"total"`
	Entries []frequency.Entry `yaml:"entries"`
}

// YAMLWriter renders the report as a single YAML document.
type YAMLWriter struct{}

// NewYAMLWriter creates a new YAMLWriter.
func NewYAMLWriter() ports.ReportWriter {
	return &YAMLWriter{}
}

// Write implements the ports.ReportWriter interface.
func (y *YAMLWriter) Write(w io.Writer, report frequency.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := yamlReport{
		Source:  report.Source,
		Total:   report.Total(),
		Entries: report.Entries(),
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}

var _ ports.ReportWriter = (*YAMLWriter)(nil)
