// Package save reads and writes whole save files. The first byte of a
// file selects its layout:
//
//	0        legacy binary, uncompressed
//	'1'      legacy pipe-delimited text
//	6        v6, snappy block compressed
//	7        v7, snappy block compressed
//	8, 9, 10 v10, snappy block compressed
//
// Decoded records are views into the input buffer; keep it alive and
// unmodified for as long as any record read from it is in use.
package save

import (
	"fmt"
	"log/slog"

	"github.com/rawbytedev/tcsave/internal/common"
	"github.com/rawbytedev/tcsave/pkg/save/legacy"
	"github.com/rawbytedev/tcsave/pkg/save/v10"
	"github.com/rawbytedev/tcsave/pkg/save/v6"
	"github.com/rawbytedev/tcsave/pkg/save/v7"
	"github.com/rawbytedev/tcsave/pkg/wire"
	"github.com/rawbytedev/tcsave/zc"
)

const (
	TagLegacyBinary = byte(legacy.FormatBinary)
	TagLegacyText   = byte(legacy.FormatText)
	TagV6           = v6.Tag
	TagV7           = v7.Tag
	TagV8           = v10.TagV8
	TagV9           = v10.TagV9
	TagV10          = v10.Tag
)

// Record is any decoded save: *legacy.Save, *v6.Circuit, *v7.Circuit or
// *v10.Circuit.
type Record interface {
	Tag() byte
}

type Options struct {
	// UnsafeStrings makes decoded text alias the input buffer.
	UnsafeStrings bool
	// Logger receives debug records for each call and a warning per
	// overlapping wire. Nil discards them.
	Logger *slog.Logger
	// MaxBodySize caps the decompressed body of versioned saves.
	// Zero means DefaultMaxBodySize.
	MaxBodySize int
}

// Codec decodes and encodes saves. It holds no mutable state and may be
// shared between goroutines.
type Codec struct {
	zc      zc.Options
	log     *slog.Logger
	maxBody int
}

func New(opts Options) *Codec {
	maxBody := opts.MaxBodySize
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySize
	}
	return &Codec{
		zc:      zc.Options{UnsafeStrings: opts.UnsafeStrings},
		log:     common.Logger(opts.Logger),
		maxBody: maxBody,
	}
}

var defaultCodec = New(Options{})

// Decode reads a save with default options.
func Decode(data []byte) (Record, error) { return defaultCodec.Decode(data) }

// Encode writes a save with default options.
func Encode(r Record) ([]byte, error) { return defaultCodec.Encode(r) }

func (c *Codec) Decode(data []byte) (Record, error) {
	if len(data) == 0 {
		return nil, wire.Errorf(wire.ErrTruncated, 0, "version tag", "empty input")
	}
	tag, body := data[0], data[1:]
	c.log.Debug("decoding save", slog.Int("tag", int(tag)), slog.Int("size", len(data)))

	switch tag {
	case TagLegacyText:
		s, err := legacy.DecodeText(body, c.zc)
		if err != nil {
			return nil, fmt.Errorf("legacy text save: %w", err)
		}
		return s, nil
	case TagLegacyBinary:
		cur := wire.NewCursor(body, c.zc)
		s, err := legacy.DecodeBinary(cur)
		if err != nil {
			return nil, fmt.Errorf("legacy binary save: %w", err)
		}
		if err := exhausted(cur); err != nil {
			return nil, fmt.Errorf("legacy binary save: %w", err)
		}
		return s, nil
	case TagV6, TagV7, TagV8, TagV9, TagV10:
	default:
		return nil, wire.Errorf(wire.ErrUnrecognized, 0, "version tag", "unsupported version %d", tag)
	}

	plain, err := decompress(body, c.maxBody)
	if err != nil {
		return nil, fmt.Errorf("v%d save: %w", tag, err)
	}
	c.log.Debug("decompressed save body",
		slog.Int("tag", int(tag)),
		slog.Int("compressed", len(body)),
		slog.Int("plain", len(plain)))

	cur := wire.NewCursor(plain, c.zc)
	var rec Record
	switch tag {
	case TagV6:
		rec, err = v6.Decode(cur, c.log)
	case TagV7:
		rec, err = v7.Decode(cur, c.log)
	default:
		var circ *v10.Circuit
		if circ, err = v10.Decode(cur, c.log); err == nil {
			circ.Version = tag
			rec = circ
		}
	}
	if err == nil {
		err = exhausted(cur)
	}
	if err != nil {
		return nil, fmt.Errorf("v%d save: %w", tag, err)
	}
	return rec, nil
}

// bodyEncoder is implemented by every record that can be written back.
type bodyEncoder interface {
	Record
	Encode(w *wire.Writer) error
}

// Encode writes r's tag byte followed by its body, compressed for the
// versioned layouts. Legacy text saves are decode-only.
func (c *Codec) Encode(r Record) ([]byte, error) {
	var (
		enc      bodyEncoder
		compress bool
	)
	switch rec := r.(type) {
	case *legacy.Save:
		if rec.Format != legacy.FormatBinary {
			return nil, fmt.Errorf("%w: legacy text saves cannot be encoded", wire.ErrUnsupported)
		}
		enc = rec
	case *v6.Circuit:
		enc, compress = rec, true
	case *v7.Circuit:
		enc, compress = rec, true
	case *v10.Circuit:
		switch rec.Tag() {
		case TagV8, TagV9, TagV10:
		default:
			return nil, fmt.Errorf("%w: v10 layout under tag %d", wire.ErrUnrecognized, rec.Tag())
		}
		enc, compress = rec, true
	default:
		return nil, fmt.Errorf("%w: cannot encode %T", wire.ErrUnsupported, r)
	}

	w := wire.NewWriter(4096)
	if err := enc.Encode(w); err != nil {
		return nil, fmt.Errorf("v%d save: %w", enc.Tag(), err)
	}
	body := w.Bytes()
	if compress {
		body = compressBody(body)
	}
	out := make([]byte, 0, 1+len(body))
	out = append(out, enc.Tag())
	out = append(out, body...)
	c.log.Debug("encoded save", slog.Int("tag", int(enc.Tag())), slog.Int("size", len(out)))
	return out, nil
}

func exhausted(c *wire.Cursor) error {
	if n := c.Len(); n != 0 {
		return wire.Errorf(wire.ErrMalformed, c.Offset(), "body", "%d trailing bytes", n)
	}
	return nil
}
