package testutil

import (
	"bytes"
	"errors"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// MockOutputSink is a mock implementation of ports.OutputSink for testing.
type MockOutputSink struct {
	CreateFunc func(path string) (io.WriteCloser, error)
}

func (m *MockOutputSink) Create(path string) (io.WriteCloser, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(path)
	}
	return nil, errors.New("MockOutputSink: CreateFunc not implemented")
}

// MockWriteCloser buffers everything written to it and records Close calls.
type MockWriteCloser struct {
	bytes.Buffer
	CloseCalls int
}

func (m *MockWriteCloser) Close() error {
	m.CloseCalls++
	return nil
}

var _ ports.OutputSink = (*MockOutputSink)(nil)
var _ io.WriteCloser = (*MockWriteCloser)(nil)
