package wire

import "encoding/binary"

// Writer appends little-endian values to a growable buffer. It mirrors
// Cursor method for method.
type Writer struct {
	buf     []byte
	scratch [8]byte
}

func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the encoded output. The slice is owned by the writer
// until the next write.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) Reset() { w.buf = w.buf[:0] }

func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

func (w *Writer) U8(v uint8) { w.buf = append(w.buf, v) }

func (w *Writer) U16(v uint16) {
	binary.LittleEndian.PutUint16(w.scratch[:], v)
	w.buf = append(w.buf, w.scratch[:2]...)
}

func (w *Writer) U32(v uint32) {
	binary.LittleEndian.PutUint32(w.scratch[:], v)
	w.buf = append(w.buf, w.scratch[:4]...)
}

func (w *Writer) U64(v uint64) {
	binary.LittleEndian.PutUint64(w.scratch[:], v)
	w.buf = append(w.buf, w.scratch[:8]...)
}

func (w *Writer) I8(v int8)   { w.U8(uint8(v)) }
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }
func (w *Writer) I64(v int64) { w.U64(uint64(v)) }

func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
	} else {
		w.U8(0)
	}
}

// Text writes len(s) as a p prefix followed by the raw bytes of s.
func (w *Writer) Text(p Prefix, s string) error {
	if err := w.PutCount(p, len(s)); err != nil {
		return err
	}
	w.buf = append(w.buf, s...)
	return nil
}

// Reserve appends n zero bytes and returns their offset so the caller
// can patch them once the real value is known.
func (w *Writer) Reserve(n int) int {
	at := len(w.buf)
	var zero [8]byte
	for n > len(zero) {
		w.buf = append(w.buf, zero[:]...)
		n -= len(zero)
	}
	w.buf = append(w.buf, zero[:n]...)
	return at
}
