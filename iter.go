package grid2d

import "iter"

// All returns an iterator over every cell paired with its coordinate, in
// row-major order (y outer, x inner): exactly Width*Height pairs. The
// sequence is restartable — each range over it begins again at (0,0) — and
// does not mutate the grid.
// Complexity: O(1) per step, O(Width×Height) to drain.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Coord{X: x, Y: y}, g.data[y*g.width+x]) {
					return
				}
			}
		}
	}
}

// Region returns an iterator over the cells inside r, in row-major order,
// yielding each coordinate with a pointer to its cell so callers can update
// in place. Pointers stay valid until the next Resize.
// Returns a BoundsError when either corner of r falls outside the grid.
// Complexity: O(1) per step, O(r.Width×r.Height) to drain.
func (g *Grid[T]) Region(r Rect) (iter.Seq2[Coord, *T], error) {
	sz := g.Size()
	if !sz.Contains(r.Min) {
		return nil, &BoundsError{X: r.Min.X, Y: r.Min.Y, Width: g.width, Height: g.height}
	}
	if !sz.Contains(r.Max) {
		return nil, &BoundsError{X: r.Max.X, Y: r.Max.Y, Width: g.width, Height: g.height}
	}

	return func(yield func(Coord, *T) bool) {
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				if !yield(Coord{X: x, Y: y}, &g.data[y*g.width+x]) {
					return
				}
			}
		}
	}, nil
}
