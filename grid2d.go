package grid2d

import (
	"fmt"
	"strings"
)

// Grid is a Width×Height container of T backed by one flat slice in
// row-major order: the cell at (x, y) lives at data[y*width+x]. The backing
// slice holds exactly width*height elements at all times; no operation,
// successful or failed, breaks that.
//
// A Grid is not internally synchronized; see the package documentation.
type Grid[T any] struct {
	width, height int
	data          []T // flat backing store, length == width*height
}

// New constructs a width×height grid with every cell set to fill.
// Returns ErrNegativeSize or ErrSizeOverflow for invalid dimensions.
// Zero dimensions are legal and produce an empty grid.
// Complexity: O(width×height) time and memory.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	n, err := Size{Width: width, Height: height}.Area()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	for i := range data {
		data[i] = fill
	}

	return &Grid[T]{width: width, height: height, data: data}, nil
}

// NewWith constructs a width×height grid where the cell at (x, y) holds
// gen(x, y). gen is invoked exactly once per cell in row-major order
// (y outer, x inner); that order is part of the contract, since gen may
// carry state of its own.
// Complexity: O(width×height) plus the cost of gen.
func NewWith[T any](width, height int, gen func(x, y int) T) (*Grid[T], error) {
	n, err := Size{Width: width, Height: height}.Area()
	if err != nil {
		return nil, err
	}
	data := make([]T, 0, n)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data = append(data, gen(x, y))
		}
	}

	return &Grid[T]{width: width, height: height, data: data}, nil
}

// FromSlice adopts data as the backing store of a width×height grid.
// The grid takes ownership of the slice; callers must not retain it.
// Returns ErrSizeMismatch when len(data) != width*height, and the usual
// dimension errors for negative or overflowing sizes.
// Complexity: O(1) — no copy is made.
func FromSlice[T any](width, height int, data []T) (*Grid[T], error) {
	n, err := Size{Width: width, Height: height}.Area()
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("grid2d: FromSlice(%d,%d) with %d elements: %w", width, height, len(data), ErrSizeMismatch)
	}

	return &Grid[T]{width: width, height: height, data: data}, nil
}

// index computes the flat offset of (x, y) after bounds checking.
// Complexity: O(1).
func (g *Grid[T]) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, &BoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}

	return y*g.width + x, nil
}

// At returns the value stored at (x, y).
// Returns a BoundsError (matching ErrOutOfBounds) for coordinates outside
// the current extent.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) (T, error) {
	idx, err := g.index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Ref returns a pointer to the cell at (x, y) for in-place update, under
// the same bounds contract as At. The pointer remains valid until the next
// Resize.
// Complexity: O(1).
func (g *Grid[T]) Ref(x, y int) (*T, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return nil, err
	}

	return &g.data[idx], nil
}

// Set overwrites the cell at (x, y) with v, under the same bounds contract
// as At. A failed Set leaves the grid unchanged.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x, y) to its row-major offset y*Width+x. It performs no
// bounds checking; the result is meaningful only for in-bounds coordinates.
// Complexity: O(1).
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate is the inverse of Index: (idx%Width, idx/Width). Valid only
// for 0 <= idx < Len(), which also implies Width > 0.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Dims returns the grid's width and height.
// Complexity: O(1).
func (g *Grid[T]) Dims() (width, height int) {
	return g.width, g.height
}

// Size returns the grid's extent as a Size.
// Complexity: O(1).
func (g *Grid[T]) Size() Size {
	return Size{Width: g.width, Height: g.height}
}

// Len returns the total number of cells, Width*Height.
// Complexity: O(1).
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// Row returns the cells of row y as a subslice of the backing store:
// zero-copy, writes through to the grid, and stays valid until the next
// Resize. The capacity is clipped so appends cannot spill into row y+1.
// Returns a BoundsError when y >= Height.
// Complexity: O(1).
func (g *Grid[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= g.height {
		return nil, &BoundsError{X: 0, Y: y, Width: g.width, Height: g.height}
	}
	off := y * g.width

	return g.data[off : off+g.width : off+g.width], nil
}

// Column returns a copy of the cells of column x, top to bottom. Unlike
// rows, columns are not contiguous in the backing store (consecutive cells
// sit Width apart), so a column cannot be viewed in place.
// Returns a BoundsError when x >= Width.
// Complexity: O(Height) time and memory.
func (g *Grid[T]) Column(x int) ([]T, error) {
	if x < 0 || x >= g.width {
		return nil, &BoundsError{X: x, Y: 0, Width: g.width, Height: g.height}
	}
	col := make([]T, g.height)
	for y := 0; y < g.height; y++ {
		col[y] = g.data[y*g.width+x]
	}

	return col, nil
}

// Clone returns a deep copy of the grid sharing no storage with g.
// Complexity: O(Width×Height) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{width: g.width, height: g.height, data: data}
}

// Fill sets every cell to v.
// Complexity: O(Width×Height).
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// String renders the grid one row per line for debugging, e.g.
// "[1, 2]\n[3, 4]\n".
// Complexity: O(Width×Height).
func (g *Grid[T]) String() string {
	var b strings.Builder
	var x, y int
	for y = 0; y < g.height; y++ {
		b.WriteByte('[')
		for x = 0; x < g.width; x++ {
			if x > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", g.data[y*g.width+x])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
