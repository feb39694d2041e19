package reportformat

import (
	"io"
	"strconv"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"github.com/olekukonko/tablewriter"
)

// TableWriter renders the report as a bordered text table with a total footer.
type TableWriter struct{}

// NewTableWriter creates a new TableWriter.
func NewTableWriter() ports.ReportWriter {
	return &TableWriter{}
}

// Write implements the ports.ReportWriter interface.
func (tw *TableWriter) Write(w io.Writer, report frequency.Report) error {
	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Count")
	for _, e := range report.Entries() {
		if err := table.Append([]string{e.Symbol, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	table.Footer("Total", strconv.Itoa(report.Total()))
	return table.Render()
}

var _ ports.ReportWriter = (*TableWriter)(nil)
