package digitcounting

import (
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	opener ports.SourceOpener
	logger *zap.Logger
}

// NewService creates a new digit counting service.
// It panics if the opener is nil.
func NewService(opener ports.SourceOpener, logger *zap.Logger) ports.DigitCountingService {
	if opener == nil {
		panic("source opener cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{opener: opener, logger: logger}
}

// CountFile runs a full session over the file at path on a fresh Counter.
func (s *service) CountFile(path string) (frequency.Report, error) {
	counter := NewCounter(s.opener, s.logger)
	if err := counter.Open(path); err != nil {
		return frequency.Report{}, err
	}
	defer counter.Close()
	return s.run(counter)
}

// CountReader runs a full session over r on a fresh Counter. r is not closed.
func (s *service) CountReader(name string, r io.Reader) (frequency.Report, error) {
	counter := NewCounter(s.opener, s.logger)
	if err := counter.OpenReader(name, r); err != nil {
		return frequency.Report{}, err
	}
	return s.run(counter)
}

func (s *service) run(counter *Counter) (frequency.Report, error) {
	if err := counter.Scan(); err != nil {
		return frequency.Report{}, err
	}
	report, err := counter.Report()
	if err != nil {
		return frequency.Report{}, err
	}
	s.logger.Info("digits counted",
		zap.String("source", report.Source),
		zap.Int("characters", report.Total()),
		zap.Int("bad_symbols", report.Tally.Other))
	return report, nil
}
