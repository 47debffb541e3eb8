package paper

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotCharacter reports a replacement that is not exactly one grapheme cluster.
	ErrNotCharacter = errors.New("not a single character")
)

// IndexError describes an out-of-range access.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}
