package digitcounting

import (
	"errors"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/domain/input"
	"github.com/AntonioJCosta/pidigits/internal/core/lines"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"go.uber.org/zap"
)

type state int

const (
	stateUnopened state = iota
	stateOpen
	stateScanned
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateUnopened:
		return "not opened"
	case stateOpen:
		return "open"
	case stateScanned:
		return "already scanned"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

/*
Counter runs a single digit counting session over one text source.
Its lifecycle is linear: Open (or OpenReader), then Scan, then any number of
Report calls. A Counter is not safe for concurrent use; scan independent
sources with independent counters.
*/
type Counter struct {
	opener ports.SourceOpener
	logger *zap.Logger

	name   string
	source io.ReadCloser
	state  state
	tally  frequency.Tally
}

// NewCounter creates a Counter that opens paths through opener.
// A nil logger disables logging.
func NewCounter(opener ports.SourceOpener, logger *zap.Logger) *Counter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Counter{opener: opener, logger: logger}
}

// Open acquires the source at path. On failure the counter stays unopened.
func (c *Counter) Open(path string) error {
	if c.state != stateUnopened {
		return &input.StateError{Op: "open", State: c.state.String()}
	}
	if c.opener == nil {
		return errors.New("no source opener configured")
	}

	rc, err := c.opener.Open(path)
	if err != nil {
		return err
	}
	c.attach(path, rc)
	return nil
}

// OpenReader uses an already open stream as the source. The counter never closes r;
// it stays owned by the caller.
func (c *Counter) OpenReader(name string, r io.Reader) error {
	if c.state != stateUnopened {
		return &input.StateError{Op: "open", State: c.state.String()}
	}
	c.attach(name, io.NopCloser(r))
	return nil
}

func (c *Counter) attach(name string, rc io.ReadCloser) {
	c.name = name
	c.source = rc
	c.state = stateOpen
	c.logger.Debug("source opened", zap.String("source", name))
}

/*
Scan reads the source to the end, classifying every character. Line
terminators are part of the lines and count as other characters.

The source is released before Scan returns, whatever the outcome. A read
failure returns *input.IOError and leaves the counter failed: the partial
counts are never reported.
*/
func (c *Counter) Scan() error {
	if c.state != stateOpen {
		return &input.StateError{Op: "scan", State: c.state.String()}
	}
	defer c.release()

	lineCount := 0
	for line, err := range lines.All(c.source) {
		if err != nil {
			c.state = stateFailed
			c.logger.Debug("scan aborted",
				zap.String("source", c.name),
				zap.Int("lines", lineCount),
				zap.Error(err))
			return &input.IOError{Source: c.name, Err: err}
		}
		c.tally.AddLine(line)
		lineCount++
	}

	c.state = stateScanned
	c.logger.Debug("scan complete",
		zap.String("source", c.name),
		zap.Int("lines", lineCount),
		zap.Int("characters", c.tally.Total()))
	return nil
}

// Report returns the counts of a completed scan. It never changes the counter.
func (c *Counter) Report() (frequency.Report, error) {
	if c.state != stateScanned {
		return frequency.Report{}, &input.StateError{Op: "report", State: c.state.String()}
	}
	return frequency.Report{Source: c.name, Tally: c.tally}, nil
}

// Close releases the source if the counter still holds it. It is safe to call more than once.
func (c *Counter) Close() error {
	if c.source == nil {
		return nil
	}
	err := c.source.Close()
	c.source = nil
	return err
}

func (c *Counter) release() {
	if err := c.Close(); err != nil {
		c.logger.Warn("closing source", zap.String("source", c.name), zap.Error(err))
	}
}
