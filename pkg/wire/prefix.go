package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Prefix is the integer encoding of a count or length field.
type Prefix uint8

const (
	PrefixU8 Prefix = iota + 1
	PrefixU16
	PrefixU32
	PrefixU64
	PrefixI64 // legacy formats
)

// Size is the encoded width of the prefix in bytes.
func (p Prefix) Size() int {
	switch p {
	case PrefixU8:
		return 1
	case PrefixU16:
		return 2
	case PrefixU32:
		return 4
	case PrefixU64, PrefixI64:
		return 8
	default:
		panic(fmt.Sprintf("wire: invalid prefix %d", p))
	}
}

func (p Prefix) String() string {
	switch p {
	case PrefixU8:
		return "u8"
	case PrefixU16:
		return "u16"
	case PrefixU32:
		return "u32"
	case PrefixU64:
		return "u64"
	case PrefixI64:
		return "i64"
	default:
		return fmt.Sprintf("Prefix(%d)", uint8(p))
	}
}

// Count decodes a p-encoded count. Negative counts and counts that do
// not fit in an int are malformed.
func (c *Cursor) Count(p Prefix) (int, error) {
	start := c.off
	var (
		n   int
		err error
	)
	switch p {
	case PrefixU8:
		var v uint8
		if v, err = c.U8(); err == nil {
			n = int(v)
		}
	case PrefixU16:
		var v uint16
		if v, err = c.U16(); err == nil {
			n = int(v)
		}
	case PrefixU32:
		var v uint32
		if v, err = c.U32(); err == nil {
			n, err = safecast.Conv[int](v)
		}
	case PrefixU64:
		var v uint64
		if v, err = c.U64(); err == nil {
			n, err = safecast.Conv[int](v)
		}
	case PrefixI64:
		var v int64
		if v, err = c.I64(); err == nil {
			if v < 0 {
				err = fmt.Errorf("negative count %d", v)
			} else {
				n, err = safecast.Conv[int](v)
			}
		}
	default:
		panic(fmt.Sprintf("wire: invalid prefix %d", p))
	}
	if err != nil {
		c.off = start
		var we *Error
		if errors.As(err, &we) {
			return 0, err
		}
		return 0, Errorf(ErrMalformed, start, p.String()+" count", "%v", err)
	}
	return n, nil
}

// PutCount appends n encoded as p.
func (w *Writer) PutCount(p Prefix, n int) error {
	at := w.Reserve(p.Size())
	return w.PatchCount(at, p, n)
}

// PatchCount overwrites the p-sized placeholder at offset at with n.
func (w *Writer) PatchCount(at int, p Prefix, n int) error {
	if at < 0 || at+p.Size() > len(w.buf) {
		return fmt.Errorf("wire: patch at %d outside %d-byte buffer", at, len(w.buf))
	}
	dst := w.buf[at:]
	var err error
	switch p {
	case PrefixU8:
		var v uint8
		if v, err = safecast.Conv[uint8](n); err == nil {
			dst[0] = v
		}
	case PrefixU16:
		var v uint16
		if v, err = safecast.Conv[uint16](n); err == nil {
			binary.LittleEndian.PutUint16(dst, v)
		}
	case PrefixU32:
		var v uint32
		if v, err = safecast.Conv[uint32](n); err == nil {
			binary.LittleEndian.PutUint32(dst, v)
		}
	case PrefixU64:
		var v uint64
		if v, err = safecast.Conv[uint64](n); err == nil {
			binary.LittleEndian.PutUint64(dst, v)
		}
	case PrefixI64:
		if n < 0 {
			err = fmt.Errorf("negative count %d", n)
		} else {
			binary.LittleEndian.PutUint64(dst, uint64(int64(n)))
		}
	default:
		panic(fmt.Sprintf("wire: invalid prefix %d", p))
	}
	if err != nil {
		return fmt.Errorf("%w: count %d does not fit %s prefix: %v", ErrMalformed, n, p, err)
	}
	return nil
}
