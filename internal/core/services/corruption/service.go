package corruption

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/input"
	"github.com/AntonioJCosta/pidigits/internal/core/domain/settings"
	"github.com/AntonioJCosta/pidigits/internal/core/lines"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	rnd    ports.RandomSource
	cfg    settings.Corruption
	logger *zap.Logger
}

// NewService creates a new corruption service drawing randomness from rnd.
// It panics if rnd is nil.
func NewService(rnd ports.RandomSource, cfg settings.Corruption, logger *zap.Logger) ports.CorruptionService {
	if rnd == nil {
		panic("random source cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{rnd: rnd, cfg: cfg, logger: logger}
}

/*
Corrupt copies in to out. Before each character, with the configured
probability, it writes one noise character drawn uniformly from
[MinChar, MaxChar]. Line terminators are copied like any other character.
*/
func (s *service) Corrupt(in io.Reader, out io.Writer) (ports.CorruptionStats, error) {
	var stats ports.CorruptionStats
	if err := s.cfg.Validate(); err != nil {
		return stats, err
	}

	bw := bufio.NewWriter(out)
	for line, err := range lines.All(in) {
		if err != nil {
			return stats, &input.IOError{Source: "input", Err: err}
		}
		for _, r := range line {
			if s.rnd.Float64() < s.cfg.Probability {
				if _, err := bw.WriteRune(s.noise()); err != nil {
					return stats, fmt.Errorf("writing corrupted output: %w", err)
				}
				stats.NoiseInserted++
			}
			if _, err := bw.WriteRune(r); err != nil {
				return stats, fmt.Errorf("writing corrupted output: %w", err)
			}
			stats.CharactersRead++
		}
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("writing corrupted output: %w", err)
	}

	s.logger.Info("corruption complete",
		zap.Int("characters", stats.CharactersRead),
		zap.Int("noise", stats.NoiseInserted))
	return stats, nil
}

func (s *service) noise() rune {
	return rune(s.cfg.MinChar + s.rnd.IntN(s.cfg.MaxChar-s.cfg.MinChar+1))
}
