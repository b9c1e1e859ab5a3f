package grid2d

// Resize replaces the backing store with a width×height one. Cells present
// in both the old and the new extent keep their value; every other cell is
// set to fill. Dimensions and storage change together: the new slice is
// fully built before the swap, so on any error the grid is left exactly as
// it was. Resize is the only operation that changes Width and Height after
// construction.
// Returns ErrNegativeSize or ErrSizeOverflow for invalid dimensions.
// Complexity: O(width×height) time and memory.
func (g *Grid[T]) Resize(width, height int, fill T) error {
	n, err := Size{Width: width, Height: height}.Area()
	if err != nil {
		return err
	}
	data := make([]T, n)
	for i := range data {
		data[i] = fill
	}
	// Copy the overlapping region row by row; rows are contiguous in both
	// the old and the new layout.
	w, h := min(g.width, width), min(g.height, height)
	for y := 0; y < h; y++ {
		copy(data[y*width:y*width+w], g.data[y*g.width:y*g.width+w])
	}
	g.width, g.height, g.data = width, height, data

	return nil
}
