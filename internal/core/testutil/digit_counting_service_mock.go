package testutil

import (
	"errors"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// MockDigitCountingService is a mock implementation of ports.DigitCountingService for testing.
type MockDigitCountingService struct {
	CountFileFunc   func(path string) (frequency.Report, error)
	CountReaderFunc func(name string, r io.Reader) (frequency.Report, error)
}

func (m *MockDigitCountingService) CountFile(path string) (frequency.Report, error) {
	if m.CountFileFunc != nil {
		return m.CountFileFunc(path)
	}
	return frequency.Report{}, errors.New("MockDigitCountingService: CountFileFunc not implemented")
}

func (m *MockDigitCountingService) CountReader(name string, r io.Reader) (frequency.Report, error) {
	if m.CountReaderFunc != nil {
		return m.CountReaderFunc(name, r)
	}
	return frequency.Report{}, errors.New("MockDigitCountingService: CountReaderFunc not implemented")
}

var _ ports.DigitCountingService = (*MockDigitCountingService)(nil)
