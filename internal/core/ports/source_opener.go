package ports

import "io"

/*
SourceOpener defines the contract for opening a text source by path.
Implementations report a missing path as *input.NotFoundError and an
unreadable one as *input.AccessError.
*/
type SourceOpener interface {
	Open(path string) (io.ReadCloser, error)
}
