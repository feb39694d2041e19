package ports

// InputFileFinder defines the contract for locating the input used when none is named.
type InputFileFinder interface {
	Find() (string, error)
}
