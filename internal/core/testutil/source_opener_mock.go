package testutil

import (
	"errors"
	"io"
	"strings"

	"github.com/AntonioJCosta/pidigits/internal/core/ports"
)

// MockSourceOpener is a mock implementation of ports.SourceOpener for testing.
type MockSourceOpener struct {
	OpenFunc func(path string) (io.ReadCloser, error)
}

func (m *MockSourceOpener) Open(path string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	return nil, errors.New("MockSourceOpener: OpenFunc not implemented")
}

// MockReadCloser wraps a reader and records how often it was closed.
type MockReadCloser struct {
	Reader     io.Reader
	CloseErr   error
	CloseCalls int
}

// NewMockReadCloser returns a MockReadCloser over content.
func NewMockReadCloser(content string) *MockReadCloser {
	return &MockReadCloser{Reader: strings.NewReader(content)}
}

func (m *MockReadCloser) Read(p []byte) (int, error) {
	return m.Reader.Read(p)
}

func (m *MockReadCloser) Close() error {
	m.CloseCalls++
	return m.CloseErr
}

var _ ports.SourceOpener = (*MockSourceOpener)(nil)
var _ io.ReadCloser = (*MockReadCloser)(nil)
