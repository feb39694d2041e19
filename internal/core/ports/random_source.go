package ports

// RandomSource is the subset of *rand.Rand used to place and pick noise characters.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}
