// Package grid2d: sentinel error set.
// All public operations return these sentinels (directly or through the
// carrier types below) and callers match them via errors.Is. Nothing in
// this package panics on user input.
package grid2d

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates an access outside [0,Width) × [0,Height).
	// Accessors return it wrapped in a BoundsError carrying the offending
	// coordinate and the grid's dimensions.
	ErrOutOfBounds = errors.New("grid2d: coordinate out of bounds")

	// ErrSizeOverflow indicates a requested Width*Height whose product does
	// not fit in int. Returned wrapped in an OverflowError.
	ErrSizeOverflow = errors.New("grid2d: size overflows int")

	// ErrNegativeSize indicates a negative width or height.
	ErrNegativeSize = errors.New("grid2d: negative dimension")

	// ErrSizeMismatch indicates a backing slice whose length differs from
	// Width*Height.
	ErrSizeMismatch = errors.New("grid2d: slice length does not match dimensions")

	// ErrBadRect indicates a rectangle whose Min exceeds its Max on some axis.
	ErrBadRect = errors.New("grid2d: rect min exceeds max")
)

// BoundsError reports the offending coordinate together with the grid
// dimensions at the time of the access.
type BoundsError struct {
	X, Y          int // rejected coordinate
	Width, Height int // grid extent when the access was made
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid2d: coordinate (%d,%d) outside %d×%d grid", e.X, e.Y, e.Width, e.Height)
}

// Unwrap lets errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// OverflowError reports dimensions whose product does not fit in int.
type OverflowError struct {
	Width, Height int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("grid2d: size %d×%d overflows int", e.Width, e.Height)
}

// Unwrap lets errors.Is(err, ErrSizeOverflow) match.
func (e *OverflowError) Unwrap() error { return ErrSizeOverflow }
