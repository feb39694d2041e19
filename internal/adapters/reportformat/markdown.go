package reportformat

import (
	"io"
	"strconv"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter renders the report as a Markdown document with a mermaid pie chart.
type MarkdownWriter struct{}

// NewMarkdownWriter creates a new MarkdownWriter.
func NewMarkdownWriter() ports.ReportWriter {
	return &MarkdownWriter{}
}

// Write implements the ports.ReportWriter interface.
func (m *MarkdownWriter) Write(w io.Writer, report frequency.Report) error {
	md := markdown.NewMarkdown(w)

	md.H1("Digit Frequency Report")
	md.PlainText("")
	md.PlainText("Source: `" + report.Source + "`")
	md.PlainText("")

	entries := report.Entries()
	rows := make([][]string, 0, len(entries)+1)
	for _, e := range entries {
		rows = append(rows, []string{e.Symbol, strconv.Itoa(e.Count)})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(report.Total()) + "**"})
	md.Table(markdown.TableSet{
		Header: []string{"Symbol", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.Total() > 0 {
		writePieChart(md, entries)
	}

	return md.Build()
}

// writePieChart adds a distribution chart of the non-zero entries.
func writePieChart(md *markdown.Markdown, entries []frequency.Entry) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Symbol Distribution"),
		piechart.WithShowData(true),
	)
	for _, e := range entries {
		if e.Count > 0 {
			chart.LabelAndIntValue(e.Symbol, uint64(e.Count))
		}
	}

	md.H2("Distribution")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

var _ ports.ReportWriter = (*MarkdownWriter)(nil)
