// pkg/model/errors.go
package model

import "fmt"

// InputError reports a missing or unreadable input file. It is fatal to the
// run that raised it.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError reports a result that could not be written back. It is fatal
// to the run that raised it.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OutputError) Unwrap() error {
	return e.Err
}
