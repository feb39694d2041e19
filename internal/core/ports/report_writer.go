package ports

import (
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
)

// ReportWriter renders a frequency report in one output format.
type ReportWriter interface {
	Write(w io.Writer, report frequency.Report) error
}
