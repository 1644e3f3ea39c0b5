package save

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Versioned bodies are snappy blocks. s2 reads them natively and
// EncodeSnappy writes output plain snappy decoders accept.

// DefaultMaxBodySize caps the decompressed body when Options leaves
// MaxBodySize at zero.
const DefaultMaxBodySize = 64 << 20

// maxSnappyExpansion bounds how many output bytes one input byte of a
// snappy block can produce: a three-byte copy yields at most 64 bytes.
const maxSnappyExpansion = 22

// decompress checks the size the block header declares before
// allocating for it.
func decompress(body []byte, limit int) ([]byte, error) {
	n, err := s2.DecodedLen(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wire.ErrCompression, err)
	}
	if n > limit {
		return nil, wire.Errorf(wire.ErrCompression, 1, "body", "declared size %d exceeds limit %d", n, limit)
	}
	if n > len(body)*maxSnappyExpansion {
		return nil, wire.Errorf(wire.ErrCompression, 1, "body", "declared size %d cannot come from %d compressed bytes", n, len(body))
	}
	plain, err := s2.Decode(nil, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wire.ErrCompression, err)
	}
	return plain, nil
}

func compressBody(body []byte) []byte {
	return s2.EncodeSnappy(nil, body)
}
