package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/tcsave/zc"
)

func encodeInts(t *testing.T, p Prefix, vals ...int64) []byte {
	w := NewWriter(0)
	require.NoError(t, EncodeWithPrefix(w, p, Own(vals...), Codec[int64](Int64Codec{})))
	return w.Bytes()
}

func TestDecodeWithPrefixIsLazyOverExactSpan(t *testing.T) {
	buf := append(encodeInts(t, PrefixU16, 10, -20, 30), 0xee)
	c := NewCursor(buf, zc.Options{})

	seq, err := DecodeWithPrefix(c, PrefixU16, Codec[int64](Int64Codec{}))
	require.NoError(t, err)
	assert.False(t, seq.IsOwned())
	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, buf[2:26], seq.Span())
	assert.Equal(t, 26, c.Offset())

	rest, err := c.U8()
	require.NoError(t, err)
	assert.Equal(t, byte(0xee), rest)
}

func TestLazyTraversalIsRepeatable(t *testing.T) {
	buf := encodeInts(t, PrefixU64, 1, 2, 3, 4)
	seq, err := DecodeWithPrefix(NewCursor(buf, zc.Options{}), PrefixU64, Codec[int64](Int64Codec{}))
	require.NoError(t, err)

	first, err := seq.Collect()
	require.NoError(t, err)
	second, err := seq.Collect()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, first)
	assert.Equal(t, first, second)

	it := seq.Iter()
	var idx []int
	for it.Next() {
		idx = append(idx, it.Index())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
}

func TestDecodeWithPrefixCountBeyondInput(t *testing.T) {
	w := NewWriter(0)
	w.U16(1000)
	w.I64(1)
	c := NewCursor(w.Bytes(), zc.Options{})
	_, err := DecodeWithPrefix(c, PrefixU16, Codec[int64](Int64Codec{}))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeWithPrefixElementTruncated(t *testing.T) {
	buf := encodeInts(t, PrefixU16, 1, 2)
	_, err := DecodeWithPrefix(NewCursor(buf[:len(buf)-1], zc.Options{}), PrefixU16, Codec[int64](Int64Codec{}))
	require.ErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "element 1")
}

func TestDecodeUntilEnd(t *testing.T) {
	span := []byte{1, 2, 3}
	seq, err := DecodeUntilEnd(span, Codec[uint8](Uint8Codec{}), zc.Options{})
	require.NoError(t, err)
	got, err := seq.Collect()
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2, 3}, got)

	_, err = DecodeUntilEnd(span, Codec[int64](Int64Codec{}), zc.Options{})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestMutableOnLazySequencePanics(t *testing.T) {
	buf := encodeInts(t, PrefixU16, 5)
	seq, err := DecodeWithPrefix(NewCursor(buf, zc.Options{}), PrefixU16, Codec[int64](Int64Codec{}))
	require.NoError(t, err)

	assert.Panics(t, func() { seq.Mutable() })
	assert.Panics(t, func() { seq.Append(6) })

	owned, err := seq.Materialize()
	require.NoError(t, err)
	owned.Mutable()[0] = 50
	owned.Append(60)
	got, err := owned.Collect()
	require.NoError(t, err)
	assert.Equal(t, []int64{50, 60}, got)

	// the lazy original still reads from its span
	orig, err := seq.Collect()
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, orig)
}

func TestMutableOnEmptyDecodedSequencePanics(t *testing.T) {
	buf := encodeInts(t, PrefixU16)
	seq, err := DecodeWithPrefix(NewCursor(buf, zc.Options{}), PrefixU16, Codec[int64](Int64Codec{}))
	require.NoError(t, err)
	require.Equal(t, 0, seq.Len())
	require.False(t, seq.IsOwned())

	assert.Panics(t, func() { seq.Mutable() })
	assert.Panics(t, func() { seq.Append(1) })

	owned, err := seq.Materialize()
	require.NoError(t, err)
	owned.Append(1)
	assert.Equal(t, 1, owned.Len())
}

func TestZeroSequenceAcceptsAppend(t *testing.T) {
	var seq Sequence[int64]
	assert.Equal(t, 0, seq.Len())
	seq.Append(1, 2)
	assert.True(t, seq.IsOwned())

	w := NewWriter(0)
	require.NoError(t, EncodeWithPrefix(w, PrefixU16, seq, Codec[int64](Int64Codec{})))
	assert.Equal(t, encodeInts(t, PrefixU16, 1, 2), w.Bytes())
}

func TestEncodeWithPrefixPatchesCount(t *testing.T) {
	buf := encodeInts(t, PrefixU16, 7, 8, 9)
	require.Len(t, buf, 2+3*8)
	assert.Equal(t, []byte{3, 0}, buf[:2])

	// a decoded lazy sequence re-encodes to the same bytes
	seq, err := DecodeWithPrefix(NewCursor(buf, zc.Options{}), PrefixU16, Codec[int64](Int64Codec{}))
	require.NoError(t, err)
	w := NewWriter(0)
	require.NoError(t, EncodeWithPrefix(w, PrefixU16, seq, Codec[int64](Int64Codec{})))
	assert.Equal(t, buf, w.Bytes())
}

func TestPairCodec(t *testing.T) {
	codec := Codec[Pair[int64, string]](PairCodec[int64, string]{
		First:  Int64Codec{},
		Second: TextCodec{Prefix: PrefixU16},
	})
	in := Own(Pair[int64, string]{First: 1, Second: "one"}, Pair[int64, string]{First: 2, Second: "two"})
	w := NewWriter(0)
	require.NoError(t, EncodeWithPrefix(w, PrefixU16, in, codec))

	seq, err := DecodeWithPrefix(NewCursor(w.Bytes(), zc.Options{}), PrefixU16, codec)
	require.NoError(t, err)
	got, err := seq.Collect()
	require.NoError(t, err)
	want, err := in.Collect()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSequencesFromEqualBytesAreEqual(t *testing.T) {
	a := encodeInts(t, PrefixU16, 1, 2)
	b := append([]byte(nil), a...)
	sa, err := DecodeWithPrefix(NewCursor(a, zc.Options{}), PrefixU16, Codec[int64](Int64Codec{}))
	require.NoError(t, err)
	sb, err := DecodeWithPrefix(NewCursor(b, zc.Options{}), PrefixU16, Codec[int64](Int64Codec{}))
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
}

func BenchmarkLazyTraversal(b *testing.B) {
	vals := make([]int64, 256)
	for i := range vals {
		vals[i] = int64(i)
	}
	w := NewWriter(0)
	_ = EncodeWithPrefix(w, PrefixU16, Own(vals...), Codec[int64](Int64Codec{}))
	seq, _ := DecodeWithPrefix(NewCursor(w.Bytes(), zc.Options{}), PrefixU16, Codec[int64](Int64Codec{}))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var sum int64
		_ = seq.Each(func(_ int, v int64) error {
			sum += v
			return nil
		})
	}
}
