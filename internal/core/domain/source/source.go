/*
Package source defines the failures that can occur while reading an input
source. Both are recoverable: the affected source is skipped and counting
continues with the next one.
*/
package source

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 reports a line that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// OpenError is returned when a named source cannot be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError is returned when a line of an opened source cannot be read.
// Line is 1-based.
type ReadError struct {
	Path string
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
