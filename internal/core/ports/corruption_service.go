package ports

import "io"

// CorruptionStats summarises one corruption run.
type CorruptionStats struct {
	CharactersRead int
	NoiseInserted  int
}

// CorruptionService defines the contract for producing a noisy copy of a text stream.
type CorruptionService interface {
	Corrupt(in io.Reader, out io.Writer) (CorruptionStats, error)
}
