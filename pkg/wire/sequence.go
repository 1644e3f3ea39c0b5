package wire

import (
	"fmt"

	"github.com/rawbytedev/tcsave/zc"
)

// Sequence is an ordered list of T in one of two forms:
//
//   - lazy: a span of still-encoded bytes plus the codec that reads
//     them. Nothing is decoded until the sequence is iterated, and every
//     iteration decodes the span again from its start.
//   - owned: a plain []T that can be mutated and appended to.
//
// The zero value is an empty lazy sequence.
type Sequence[T any] struct {
	span  []byte
	count int
	codec Codec[T]
	opts  zc.Options
	items []T
	owned bool
}

// Own builds an owned sequence over items.
func Own[T any](items ...T) Sequence[T] {
	return Sequence[T]{items: items, owned: true}
}

func (s Sequence[T]) IsOwned() bool { return s.owned }

// Len is the element count. It never decodes.
func (s Sequence[T]) Len() int {
	if s.owned {
		return len(s.items)
	}
	return s.count
}

// Span returns the encoded bytes behind a lazy sequence, nil when owned.
func (s Sequence[T]) Span() []byte {
	if s.owned {
		return nil
	}
	return s.span
}

func (s Sequence[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{seq: s, idx: -1}
	if !s.owned {
		it.cur = NewCursor(s.span, s.opts)
	}
	return it
}

// Collect decodes every element into a new slice.
func (s Sequence[T]) Collect() ([]T, error) {
	out := make([]T, 0, s.Len())
	it := s.Iter()
	for it.Next() {
		out = append(out, it.Value())
	}
	return out, it.Err()
}

// Each calls fn for every element in order, stopping at the first error.
func (s Sequence[T]) Each(fn func(i int, v T) error) error {
	it := s.Iter()
	for it.Next() {
		if err := fn(it.Index(), it.Value()); err != nil {
			return err
		}
	}
	return it.Err()
}

// Materialize converts a lazy sequence into an owned one. Owned
// sequences are returned unchanged.
func (s Sequence[T]) Materialize() (Sequence[T], error) {
	if s.owned {
		return s, nil
	}
	items, err := s.Collect()
	if err != nil {
		return Sequence[T]{}, err
	}
	return Own(items...), nil
}

// Mutable returns the backing slice of an owned sequence for in-place
// edits. Calling it on a decoded sequence, even an empty one, is a
// programming error and panics; Materialize first. The zero Sequence
// counts as an empty owned one.
func (s *Sequence[T]) Mutable() []T {
	s.promote("Mutable")
	return s.items
}

// Append adds v to an owned or zero sequence. Decoded sequences panic
// like Mutable.
func (s *Sequence[T]) Append(v ...T) {
	s.promote("Append")
	s.items = append(s.items, v...)
}

func (s *Sequence[T]) promote(op string) {
	if s.owned {
		return
	}
	if s.codec != nil {
		panic(fmt.Sprintf("wire: %s on a lazy sequence of %d elements; call Materialize first", op, s.count))
	}
	*s = Sequence[T]{owned: true}
}

// Iterator walks a Sequence:
//
//	it := seq.Iter()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] struct {
	seq Sequence[T]
	cur *Cursor
	idx int
	val T
	err error
}

func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.seq.owned {
		if it.idx+1 >= len(it.seq.items) {
			return false
		}
		it.idx++
		it.val = it.seq.items[it.idx]
		return true
	}
	if it.cur.Len() == 0 {
		return false
	}
	v, err := it.seq.codec.Decode(it.cur)
	if err != nil {
		it.err = fmt.Errorf("element %d: %w", it.idx+1, err)
		return false
	}
	it.idx++
	it.val = v
	return true
}

// Value is the element produced by the last successful Next.
func (it *Iterator[T]) Value() T { return it.val }

// Index is the position of Value within the sequence.
func (it *Iterator[T]) Index() int { return it.idx }

func (it *Iterator[T]) Err() error { return it.err }
