package rt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rt package.
var (
	// ErrOutOfBounds is returned when a canvas coordinate lies outside the canvas.
	ErrOutOfBounds = errors.New("rt: pixel out of bounds")

	// ErrIndexOutOfRange is returned when a matrix row or column is outside [0, size).
	ErrIndexOutOfRange = errors.New("rt: matrix index out of range")

	// ErrElementCount is returned when a matrix initializer has the wrong number of values.
	ErrElementCount = errors.New("rt: wrong matrix element count")

	// ErrDivisionByZero is returned when normalizing a zero-magnitude tuple.
	ErrDivisionByZero = errors.New("rt: division by zero")

	// ErrUnsupportedFormat is returned when an export format is not known.
	ErrUnsupportedFormat = errors.New("rt: unsupported image format")
)

// BoundsError reports a canvas access outside the pixel buffer.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("rt: pixel (%d, %d) out of bounds for %dx%d canvas", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
