package source

import (
	"errors"
	"fmt"
)

// Errors returned when byte offsets cannot be applied to a text.
var (
	// ErrOutOfBounds indicates an offset past the end of the text, a negative
	// offset, or a range whose start is after its end.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidBoundary indicates an offset inside a UTF-8 sequence.
	ErrInvalidBoundary = errors.New("not on a UTF-8 boundary")
)

// BoundsError records a failed slicing operation.
type BoundsError struct {
	Op     string // slice, sub, owner sub, narrow, advance, position
	Bounds Bounds
	Len    int // length of the text the bounds were applied to
	Err    error
}

func (e *BoundsError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("source: %s %s of %d-byte text: %v", e.Op, e.Bounds, e.Len, e.Err)
}

func (e *BoundsError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
