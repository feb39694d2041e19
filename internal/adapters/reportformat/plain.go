package reportformat

import (
	"io"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// PlainWriter prints one "<symbol> <count>" line per entry.
type PlainWriter struct{}

// NewPlainWriter creates a new PlainWriter.
func NewPlainWriter() ports.ReportWriter {
	return &PlainWriter{}
}

// Write implements the ports.ReportWriter interface.
func (p *PlainWriter) Write(w io.Writer, report frequency.Report) error {
	var b strings.Builder
	for _, e := range report.Entries() {
		b.WriteString(e.Symbol)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(e.Count))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

var _ ports.ReportWriter = (*PlainWriter)(nil)
