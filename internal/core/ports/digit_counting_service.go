package ports

import (
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
)

// DigitCountingService defines the contract for running a complete counting session.
type DigitCountingService interface {
	// CountFile opens path, scans it and returns the report.
	CountFile(path string) (frequency.Report, error)

	// CountReader scans an already open stream. name is used in reports and errors.
	CountReader(name string, r io.Reader) (frequency.Report, error)
}
