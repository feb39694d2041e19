/*
Package lines turns a byte stream into a lazy sequence of text lines.
*/
package lines

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

/*
All returns the lines of r in order. Each line keeps its terminator ("\n" or
"\r\n"); a final line without one is yielded as is. A read error other than
io.EOF is yielded once with an empty line and ends the sequence.
*/
func All(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				if !yield(line, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
		}
	}
}
