package testutil

import "github.com/AntonioJCosta/pidigits/internal/core/ports"

// MockRandomSource replays fixed values. Float64 cycles through Floats and
// IntN cycles through Ints, reducing each modulo n.
type MockRandomSource struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

func (m *MockRandomSource) Float64() float64 {
	if len(m.Floats) == 0 {
		return 0
	}
	v := m.Floats[m.floatIdx%len(m.Floats)]
	m.floatIdx++
	return v
}

func (m *MockRandomSource) IntN(n int) int {
	if len(m.Ints) == 0 {
		return 0
	}
	v := m.Ints[m.intIdx%len(m.Ints)]
	m.intIdx++
	return v % n
}

var _ ports.RandomSource = (*MockRandomSource)(nil)
