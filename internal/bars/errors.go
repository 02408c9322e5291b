package bars

import (
	"errors"
	"fmt"
)

// Domain errors for bar array operations.
var (
	// ErrInvalidSize indicates a request for an array with no bars.
	ErrInvalidSize = errors.New("bars: bar count must be positive")

	// ErrInvalidBounds indicates a height range with min > max or a negative minimum.
	ErrInvalidBounds = errors.New("bars: invalid height bounds")

	// ErrIndexOutOfRange indicates an index outside [0, n). Drivers never
	// produce one when they are correct, so callers treat it as fatal.
	ErrIndexOutOfRange = errors.New("bars: index out of range")

	// ErrOutOfBounds indicates a value outside the generation bounds.
	ErrOutOfBounds = errors.New("bars: height outside generation bounds")
)

// IndexError wraps ErrIndexOutOfRange with the failing operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bars: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
