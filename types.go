package grid2d

import (
	"math"
	"math/bits"
)

// Coord is a 2D coordinate inside a grid. X grows rightward, Y downward.
type Coord struct {
	X, Y int
}

// Size describes the extent of a grid: Width columns by Height rows.
type Size struct {
	Width, Height int
}

// Area returns Width*Height, the number of cells a grid of this Size holds.
// Returns ErrNegativeSize when either dimension is negative, and an
// OverflowError (matching ErrSizeOverflow) when the product does not fit
// in int.
// Complexity: O(1).
func (s Size) Area() (int, error) {
	if s.Width < 0 || s.Height < 0 {
		return 0, ErrNegativeSize
	}
	hi, lo := bits.Mul64(uint64(s.Width), uint64(s.Height))
	if hi != 0 || lo > math.MaxInt {
		return 0, &OverflowError{Width: s.Width, Height: s.Height}
	}

	return int(lo), nil
}

// Contains reports whether c lies within [0,Width) × [0,Height).
// Complexity: O(1).
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Rect is a rectangular region described by inclusive Min and Max corners.
// The zero Rect covers the single cell (0,0).
type Rect struct {
	Min, Max Coord
}

// NewRect builds a Rect from inclusive corners.
// Returns ErrBadRect when min exceeds max on either axis.
// Complexity: O(1).
func NewRect(min, max Coord) (Rect, error) {
	if min.X > max.X || min.Y > max.Y {
		return Rect{}, ErrBadRect
	}

	return Rect{Min: min, Max: max}, nil
}

// Width returns the number of columns the rectangle spans.
// Complexity: O(1).
func (r Rect) Width() int {
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows the rectangle spans.
// Complexity: O(1).
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

// Size returns the rectangle's extent as a Size.
// Complexity: O(1).
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}
