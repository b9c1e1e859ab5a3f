// Package grid2d provides a generic, bounds-checked 2D container backed by
// a single contiguous slice.
//
// What:
//
//   - Grid[T] stores Width×Height cells of any element type T in row-major
//     order: the cell at (x, y) lives at offset y*Width+x, so the cells of
//     one row are adjacent in memory.
//   - Coordinate access (At, Ref, Set) is bounds-validated; Index and
//     Coordinate expose the raw row-major mapping for callers that manage
//     their own bounds.
//   - Row returns a zero-copy slice view; Column materializes a copy,
//     because column cells sit Width apart in the backing store.
//   - All and Region iterate cells with their coordinates in row-major
//     order; Region yields pointers for in-place mutation over a
//     sub-rectangle.
//   - Resize reallocates the storage, preserving the region present in
//     both the old and the new extent.
//   - The logical shape {width, height, data} round-trips through
//     encoding/json and gopkg.in/yaml.v3.
//
// Why:
//
//   - Game boards, tile maps, cellular automata.
//   - Image-like scalar fields, masks, heightmaps.
//   - Any dense (x, y)-addressed table that outgrows [][]T.
//
// Complexity:
//
//   - At / Ref / Set / Index / Coordinate / Row / Dims: O(1).
//   - Column: O(Height).
//   - New / NewWith / Clone / Fill / Resize: O(Width×Height).
//
// Concurrency:
//
//   - A Grid is not internally synchronized. Callers sharing one across
//     goroutines must provide their own mutual exclusion.
//
// Errors:
//
//   - ErrOutOfBounds (carried by BoundsError): access outside the current
//     extent.
//   - ErrSizeOverflow (carried by OverflowError): Width×Height does not fit
//     in int.
//   - ErrNegativeSize: negative width or height.
//   - ErrSizeMismatch: backing slice length differs from Width×Height.
//   - ErrBadRect: rectangle whose Min exceeds its Max.
package grid2d
