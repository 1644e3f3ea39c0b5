package wire

import (
	"fmt"

	"github.com/rawbytedev/tcsave/zc"
)

// Codec reads and writes one element type. Implementations are meant to
// be small comparable values (usually empty structs) so that sequences
// decoded from equal bytes are themselves equal.
type Codec[T any] interface {
	Decode(c *Cursor) (T, error)
	Encode(w *Writer, v T) error
}

// DecodeWithPrefix reads a p-encoded count followed by that many
// elements. The elements are decoded once to validate and measure them,
// then dropped; the result is a lazy sequence over exactly the bytes
// they occupied. Every element must occupy at least one byte.
func DecodeWithPrefix[T any](c *Cursor, p Prefix, codec Codec[T]) (Sequence[T], error) {
	n, err := c.Count(p)
	if err != nil {
		return Sequence[T]{}, err
	}
	if n > c.Len() {
		return Sequence[T]{}, Errorf(ErrTruncated, c.off, "sequence", "%d elements cannot fit in %d bytes", n, c.Len())
	}
	start := c.off
	for i := 0; i < n; i++ {
		if _, err := codec.Decode(c); err != nil {
			return Sequence[T]{}, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return Sequence[T]{
		span:  c.buf[start:c.off:c.off],
		count: n,
		codec: codec,
		opts:  c.opts,
	}, nil
}

// DecodeUntilEnd treats span as back-to-back elements with no count.
// The span is validated by one full traversal.
func DecodeUntilEnd[T any](span []byte, codec Codec[T], opts zc.Options) (Sequence[T], error) {
	c := NewCursor(span, opts)
	n := 0
	for c.Len() > 0 {
		if _, err := codec.Decode(c); err != nil {
			return Sequence[T]{}, fmt.Errorf("element %d: %w", n, err)
		}
		n++
	}
	return Sequence[T]{
		span:  span[:len(span):len(span)],
		count: n,
		codec: codec,
		opts:  opts,
	}, nil
}

// EncodeWithPrefix writes a placeholder count, every element of s, then
// patches the placeholder with the number of elements written.
func EncodeWithPrefix[T any](w *Writer, p Prefix, s Sequence[T], codec Codec[T]) error {
	at := w.Reserve(p.Size())
	n, err := encodeAll(w, s, codec)
	if err != nil {
		return err
	}
	return w.PatchCount(at, p, n)
}

// EncodeUntilEnd writes every element of s with no count.
func EncodeUntilEnd[T any](w *Writer, s Sequence[T], codec Codec[T]) error {
	_, err := encodeAll(w, s, codec)
	return err
}

func encodeAll[T any](w *Writer, s Sequence[T], codec Codec[T]) (int, error) {
	n := 0
	it := s.Iter()
	for it.Next() {
		if err := codec.Encode(w, it.Value()); err != nil {
			return n, fmt.Errorf("element %d: %w", n, err)
		}
		n++
	}
	return n, it.Err()
}

type Uint8Codec struct{}

func (Uint8Codec) Decode(c *Cursor) (uint8, error) { return c.U8() }

func (Uint8Codec) Encode(w *Writer, v uint8) error {
	w.U8(v)
	return nil
}

type Int64Codec struct{}

func (Int64Codec) Decode(c *Cursor) (int64, error) { return c.I64() }

func (Int64Codec) Encode(w *Writer, v int64) error {
	w.I64(v)
	return nil
}

type Uint64Codec struct{}

func (Uint64Codec) Decode(c *Cursor) (uint64, error) { return c.U64() }

func (Uint64Codec) Encode(w *Writer, v uint64) error {
	w.U64(v)
	return nil
}

// TextCodec reads and writes Prefix-length UTF-8 strings.
type TextCodec struct {
	Prefix Prefix
}

func (t TextCodec) Decode(c *Cursor) (string, error) { return c.Text(t.Prefix) }

func (t TextCodec) Encode(w *Writer, v string) error { return w.Text(t.Prefix, v) }

// Pair is a two-field tuple element.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairCodec encodes a Pair as its two fields back to back.
type PairCodec[A, B any] struct {
	First  Codec[A]
	Second Codec[B]
}

func (p PairCodec[A, B]) Decode(c *Cursor) (Pair[A, B], error) {
	a, err := p.First.Decode(c)
	if err != nil {
		return Pair[A, B]{}, err
	}
	b, err := p.Second.Decode(c)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

func (p PairCodec[A, B]) Encode(w *Writer, v Pair[A, B]) error {
	if err := p.First.Encode(w, v.First); err != nil {
		return err
	}
	return p.Second.Encode(w, v.Second)
}
