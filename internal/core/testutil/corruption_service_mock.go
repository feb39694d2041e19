package testutil

import (
	"errors"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// MockCorruptionService is a mock implementation of ports.CorruptionService for testing.
type MockCorruptionService struct {
	CorruptFunc func(in io.Reader, out io.Writer) (ports.CorruptionStats, error)
}

func (m *MockCorruptionService) Corrupt(in io.Reader, out io.Writer) (ports.CorruptionStats, error) {
	if m.CorruptFunc != nil {
		return m.CorruptFunc(in, out)
	}
	return ports.CorruptionStats{}, errors.New("MockCorruptionService: CorruptFunc not implemented")
}

var _ ports.CorruptionService = (*MockCorruptionService)(nil)
