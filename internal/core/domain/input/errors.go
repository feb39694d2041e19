/*
Package input defines the errors raised while opening and reading text sources.
*/
package input

import "fmt"

// NotFoundError is returned when an input path does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// AccessError is returned when an input exists but cannot be read.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot read input file %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// IOError is returned when reading fails after the source was opened successfully.
type IOError struct {
	Source string
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// StateError is returned when an operation is called in the wrong lifecycle state.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: counter is %s", e.Op, e.State)
}
