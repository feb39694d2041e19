package ports

import "io"

// OutputSink defines the contract for creating the destination of generated text.
type OutputSink interface {
	Create(path string) (io.WriteCloser, error)
}
