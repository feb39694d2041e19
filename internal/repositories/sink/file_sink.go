package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// FileSink creates output files on the local file system.
type FileSink struct{}

// NewFileSink creates a new FileSink.
func NewFileSink() ports.OutputSink {
	return &FileSink{}
}

// Create implements the ports.OutputSink interface.
// Missing parent directories are created and an existing file is truncated.
func (s *FileSink) Create(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("output path cannot be empty")
	}
	dirPath := filepath.Dir(path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s for writing: %w", path, err)
	}
	return file, nil
}

var _ ports.OutputSink = (*FileSink)(nil)
