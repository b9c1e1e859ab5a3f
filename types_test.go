package grid2d_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/grid2d"
)

//----------------------------------------------------------------------------//
// Size tests
//----------------------------------------------------------------------------//

// TestSizeArea verifies the cell count and both failure kinds.
func TestSizeArea(t *testing.T) {
	cases := []struct {
		name string
		size grid2d.Size
		want int
		err  error
	}{
		{"3x2", grid2d.Size{Width: 3, Height: 2}, 6, nil},
		{"ZeroWidth", grid2d.Size{Width: 0, Height: 5}, 0, nil},
		{"ZeroBoth", grid2d.Size{}, 0, nil},
		{"NegativeWidth", grid2d.Size{Width: -1, Height: 2}, 0, grid2d.ErrNegativeSize},
		{"NegativeHeight", grid2d.Size{Width: 2, Height: -3}, 0, grid2d.ErrNegativeSize},
		{"Overflow", grid2d.Size{Width: math.MaxInt, Height: 2}, 0, grid2d.ErrSizeOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.size.Area()
			if !errors.Is(err, tc.err) {
				t.Fatalf("Area() error = %v; want %v", err, tc.err)
			}
			if err == nil && got != tc.want {
				t.Errorf("Area() = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestSizeContains checks the half-open containment contract on a 3×2 size.
func TestSizeContains(t *testing.T) {
	s := grid2d.Size{Width: 3, Height: 2}

	inside := []grid2d.Coord{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, c := range inside {
		if !s.Contains(c) {
			t.Errorf("Contains(%v) = false; want true", c)
		}
	}
	outside := []grid2d.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, c := range outside {
		if s.Contains(c) {
			t.Errorf("Contains(%v) = true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Rect tests
//----------------------------------------------------------------------------//

// TestNewRect verifies corner validation on both axes.
func TestNewRect(t *testing.T) {
	cases := []struct {
		name     string
		min, max grid2d.Coord
		err      error
	}{
		{"Valid", grid2d.Coord{X: 1, Y: 2}, grid2d.Coord{X: 5, Y: 3}, nil},
		{"SingleCell", grid2d.Coord{X: 2, Y: 2}, grid2d.Coord{X: 2, Y: 2}, nil},
		{"MinXBeyondMax", grid2d.Coord{X: 2, Y: 1}, grid2d.Coord{X: 1, Y: 1}, grid2d.ErrBadRect},
		{"MinYBeyondMax", grid2d.Coord{X: 1, Y: 2}, grid2d.Coord{X: 1, Y: 1}, grid2d.ErrBadRect},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid2d.NewRect(tc.min, tc.max)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewRect(%v,%v) error = %v; want %v", tc.min, tc.max, err, tc.err)
			}
		})
	}
}

// TestRectDims checks the inclusive-corner span arithmetic.
func TestRectDims(t *testing.T) {
	r, err := grid2d.NewRect(grid2d.Coord{X: 1, Y: 2}, grid2d.Coord{X: 5, Y: 3})
	if err != nil {
		t.Fatalf("NewRect error: %v", err)
	}
	if r.Width() != 5 {
		t.Errorf("Width() = %d; want 5", r.Width())
	}
	if r.Height() != 2 {
		t.Errorf("Height() = %d; want 2", r.Height())
	}
	if want := (grid2d.Size{Width: 5, Height: 2}); r.Size() != want {
		t.Errorf("Size() = %v; want %v", r.Size(), want)
	}
}
