package grid2d

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// gridShape is the serialization record shared by every codec: width,
// height, and the flat row-major data, in that field order. The package
// implements no wire format itself; it exposes this shape and lets the
// codec do the encoding.
type gridShape[T any] struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Data   []T `json:"data" yaml:"data"`
}

// shape exports the grid's logical shape for encoding. The Data field
// aliases the backing store; encoders only read it.
func (g *Grid[T]) shape() gridShape[T] {
	return gridShape[T]{Width: g.width, Height: g.height, Data: g.data}
}

// adopt validates a decoded shape and installs it, so that every
// successfully decoded grid satisfies len(data) == width*height.
func (g *Grid[T]) adopt(s gridShape[T]) error {
	n, err := Size{Width: s.Width, Height: s.Height}.Area()
	if err != nil {
		return err
	}
	if len(s.Data) != n {
		return fmt.Errorf("grid2d: decode %dx%d with %d elements: %w", s.Width, s.Height, len(s.Data), ErrSizeMismatch)
	}
	if s.Data == nil {
		s.Data = make([]T, 0)
	}
	g.width, g.height, g.data = s.Width, s.Height, s.Data

	return nil
}

// MarshalJSON encodes the grid as {"width":W,"height":H,"data":[...]} with
// data in row-major order.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.shape())
}

// UnmarshalJSON decodes the three-field shape produced by MarshalJSON and
// revalidates it, rejecting negative dimensions, overflowing products, and
// data whose length does not match width*height.
func (g *Grid[T]) UnmarshalJSON(b []byte) error {
	var s gridShape[T]
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return g.adopt(s)
}

// MarshalYAML implements yaml.Marshaler with the same three-field shape as
// MarshalJSON.
func (g *Grid[T]) MarshalYAML() (interface{}, error) {
	return g.shape(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler under the same validation
// rules as UnmarshalJSON.
func (g *Grid[T]) UnmarshalYAML(value *yaml.Node) error {
	var s gridShape[T]
	if err := value.Decode(&s); err != nil {
		return err
	}

	return g.adopt(s)
}
