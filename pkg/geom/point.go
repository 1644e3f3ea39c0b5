// Package geom holds the board geometry shared by the save formats:
// points, bit-packed wire paths and the duplicate-wire check.
package geom

import (
	"cmp"
	"fmt"

	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Point is a board coordinate. Points order lexicographically, x first.
type Point struct {
	X int16
	Y int16
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// PointCodec is the two-i16 encoding used from version 6 on.
type PointCodec struct{}

func (PointCodec) Decode(c *wire.Cursor) (Point, error) {
	x, err := c.I16()
	if err != nil {
		return Point{}, err
	}
	y, err := c.I16()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (PointCodec) Encode(w *wire.Writer, p Point) error {
	w.I16(p.X)
	w.I16(p.Y)
	return nil
}

// BytePointCodec is the two-i8 encoding of the legacy binary format.
type BytePointCodec struct{}

func (BytePointCodec) Decode(c *wire.Cursor) (Point, error) {
	x, err := c.I8()
	if err != nil {
		return Point{}, err
	}
	y, err := c.I8()
	if err != nil {
		return Point{}, err
	}
	return Point{X: int16(x), Y: int16(y)}, nil
}

func (BytePointCodec) Encode(w *wire.Writer, p Point) error {
	if p.X < -128 || p.X > 127 || p.Y < -128 || p.Y > 127 {
		return fmt.Errorf("%w: point %v does not fit the byte encoding", wire.ErrMalformed, p)
	}
	w.I8(int8(p.X))
	w.I8(int8(p.Y))
	return nil
}
