package testutil

import (
	"errors"

	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// MockInputFileFinder is a mock implementation of ports.InputFileFinder for testing.
type MockInputFileFinder struct {
	FindFunc func() (string, error)
}

func (m *MockInputFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", errors.New("MockInputFileFinder: FindFunc not implemented")
}

var _ ports.InputFileFinder = (*MockInputFileFinder)(nil)
