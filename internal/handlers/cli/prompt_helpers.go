package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/pidigits/internal/handlers/ui"
)

// ErrNoFileName indicates that the user answered the prompt with an empty line.
var ErrNoFileName = errors.New("no file name entered")

// promptForFileName asks for a file name on out and reads one line from in.
func promptForFileName(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, ui.PromptColor("Enter the name of the file: "))

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading file name: %w", err)
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return "", ErrNoFileName
	}
	return name, nil
}
