// Package wire is the byte-level layer shared by every save format:
// a forward-only cursor over an immutable buffer, its mirror writer,
// length prefixes and lazily decoded sequences.
package wire

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/rawbytedev/tcsave/zc"
)

// Cursor reads little-endian values from buf, advancing off by exactly
// the number of bytes consumed. It never moves backward and a failed
// read leaves it where it was.
type Cursor struct {
	buf  []byte
	off  int
	opts zc.Options
}

func NewCursor(buf []byte, opts zc.Options) *Cursor {
	return &Cursor{buf: buf, opts: opts}
}

// Offset is the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Len is the number of bytes left.
func (c *Cursor) Len() int { return len(c.buf) - c.off }

// Remaining returns the unread bytes without consuming them.
func (c *Cursor) Remaining() []byte { return c.buf[c.off:] }

func (c *Cursor) Options() zc.Options { return c.opts }

// Next consumes n bytes and returns them as a view into the input.
func (c *Cursor) Next(n int, what string) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, Errorf(ErrTruncated, c.off, what, "need %d bytes, have %d", n, c.Len())
	}
	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek(what string) (byte, error) {
	if c.Len() < 1 {
		return 0, Errorf(ErrTruncated, c.off, what, "need 1 byte, have 0")
	}
	return c.buf[c.off], nil
}

func (c *Cursor) U8() (uint8, error) {
	b, err := c.Next(1, "u8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) U16() (uint16, error) {
	b, err := c.Next(2, "u16")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) U32() (uint32, error) {
	b, err := c.Next(4, "u32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) U64() (uint64, error) {
	b, err := c.Next(8, "u64")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

func (c *Cursor) I64() (int64, error) {
	v, err := c.U64()
	return int64(v), err
}

// Bool reads one byte; any nonzero value is true.
func (c *Cursor) Bool() (bool, error) {
	v, err := c.U8()
	return v != 0, err
}

// Text reads a p-prefixed UTF-8 string. Under zc.Options.UnsafeStrings
// the result aliases the input buffer.
func (c *Cursor) Text(p Prefix) (string, error) {
	start := c.off
	n, err := c.Count(p)
	if err != nil {
		return "", err
	}
	b, err := c.Next(n, "text")
	if err != nil {
		c.off = start
		return "", err
	}
	if !utf8.Valid(b) {
		c.off = start
		return "", Errorf(ErrMalformed, start, "text", "invalid UTF-8")
	}
	return c.opts.String(b), nil
}
