package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/input"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errIsDirectory = errors.New("is a directory")

/*
FileOpener opens text files from the local file system.
It implements the ports.SourceOpener interface. The returned stream is
decoded to UTF-8 (see Decode) and closing it closes the file.
*/
type FileOpener struct{}

// NewFileOpener creates a new FileOpener.
func NewFileOpener() ports.SourceOpener {
	return &FileOpener{}
}

// decodedFile pairs the decoding reader with the file it reads from.
type decodedFile struct {
	io.Reader
	io.Closer
}

// Open implements the ports.SourceOpener interface.
func (o *FileOpener) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, &input.AccessError{Path: path, Err: fmt.Errorf("stat: %w", err)}
	}
	if info.IsDir() {
		file.Close()
		return nil, &input.AccessError{Path: path, Err: errIsDirectory}
	}

	return decodedFile{Reader: Decode(file), Closer: file}, nil
}

/*
Decode wraps r so that it yields UTF-8. A UTF-8 byte order mark is dropped and
UTF-16 input that starts with a byte order mark is transcoded. Anything else
is read as UTF-8.
*/
func Decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// classifyOpenError maps an os.Open failure onto the input error types.
// Anything other than a missing path means the file exists but cannot be read.
func classifyOpenError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &input.NotFoundError{Path: path, Err: err}
	}
	return &input.AccessError{Path: path, Err: err}
}

var _ ports.SourceOpener = (*FileOpener)(nil)
