package geom

import (
	"fmt"

	"github.com/rawbytedev/tcsave/pkg/wire"
)

const (
	// TeleportSentinel opens a path that is a single destination point.
	TeleportSentinel byte = 0x20

	lengthMask     = 0x1f
	directionShift = 5
	// MaxSegmentLength is the largest length a segment byte can hold.
	MaxSegmentLength = lengthMask
)

// Direction is one of the eight compass headings a segment can take.
type Direction uint8

const (
	Right Direction = iota
	DownRight
	Down
	DownLeft
	Left
	UpLeft
	Up
	UpRight
)

var directionNames = [...]string{"Right", "DownRight", "Down", "DownLeft", "Left", "UpLeft", "Up", "UpRight"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta is the unit step for d; y grows downward.
func (d Direction) Delta() (dx, dy int16) {
	switch d {
	case Right:
		return 1, 0
	case DownRight:
		return 1, 1
	case Down:
		return 0, 1
	case DownLeft:
		return -1, 1
	case Left:
		return -1, 0
	case UpLeft:
		return -1, -1
	case Up:
		return 0, -1
	case UpRight:
		return 1, -1
	}
	return 0, 0
}

// Segment is a straight run of Length cells heading Direction.
type Segment struct {
	Length    uint8
	Direction Direction
}

// SegmentCodec packs a segment into one byte: length in the low five
// bits, direction in the high three.
type SegmentCodec struct{}

func (SegmentCodec) Decode(c *wire.Cursor) (Segment, error) {
	b, err := c.U8()
	if err != nil {
		return Segment{}, err
	}
	return Segment{Length: b & lengthMask, Direction: Direction(b >> directionShift)}, nil
}

// Encode rejects length 0, which would read back as a terminator.
func (SegmentCodec) Encode(w *wire.Writer, s Segment) error {
	if s.Length == 0 || s.Length > MaxSegmentLength {
		return fmt.Errorf("%w: segment length %d outside 1..%d", wire.ErrMalformed, s.Length, MaxSegmentLength)
	}
	if s.Direction > UpRight {
		return fmt.Errorf("%w: segment direction %d", wire.ErrMalformed, s.Direction)
	}
	w.U8(s.Length | byte(s.Direction)<<directionShift)
	return nil
}

// Path is how a wire leaves its start point: either a teleport to
// Target, or a list of segments closed by a terminator byte.
type Path struct {
	Teleport bool
	Target   Point

	Segments wire.Sequence[Segment]
	// Terminator is the byte that closed Segments. Its low five bits are
	// zero; the high bits are kept so the path re-encodes unchanged.
	Terminator byte
}

// TeleportTo builds a teleport path.
func TeleportTo(p Point) Path { return Path{Teleport: true, Target: p} }

// NewRoute builds a segment path.
func NewRoute(segments ...Segment) Path { return Path{Segments: wire.Own(segments...)} }

// End walks the segments from start. Teleport paths end at Target.
func (p Path) End(start Point) (Point, error) {
	if p.Teleport {
		return p.Target, nil
	}
	end := start
	err := p.Segments.Each(func(_ int, s Segment) error {
		dx, dy := s.Direction.Delta()
		n := int16(s.Length)
		end.X += dx * n
		end.Y += dy * n
		return nil
	})
	return end, err
}

// PathCodec reads and writes a Path in the newer binary formats.
type PathCodec struct{}

func (PathCodec) Decode(c *wire.Cursor) (Path, error) {
	first, err := c.Peek("path")
	if err != nil {
		return Path{}, err
	}
	if first == TeleportSentinel {
		if _, err := c.U8(); err != nil {
			return Path{}, err
		}
		target, err := PointCodec{}.Decode(c)
		if err != nil {
			return Path{}, fmt.Errorf("teleport target: %w", err)
		}
		return TeleportTo(target), nil
	}

	rest := c.Remaining()
	end := -1
	for i, b := range rest {
		if b&lengthMask == 0 {
			end = i
			break
		}
	}
	if end < 0 {
		return Path{}, wire.Errorf(wire.ErrTruncated, c.Offset(), "path", "no terminator in %d bytes", len(rest))
	}
	raw, err := c.Next(end+1, "path")
	if err != nil {
		return Path{}, err
	}
	segments, err := wire.DecodeUntilEnd(raw[:end], wire.Codec[Segment](SegmentCodec{}), c.Options())
	if err != nil {
		return Path{}, err
	}
	return Path{Segments: segments, Terminator: raw[end]}, nil
}

func (PathCodec) Encode(w *wire.Writer, p Path) error {
	if p.Teleport {
		w.U8(TeleportSentinel)
		return PointCodec{}.Encode(w, p.Target)
	}
	if p.Terminator&lengthMask != 0 {
		return fmt.Errorf("%w: path terminator %#x has a nonzero length", wire.ErrMalformed, p.Terminator)
	}
	if p.Segments.Len() == 0 && p.Terminator == TeleportSentinel {
		return fmt.Errorf("%w: empty path terminator collides with the teleport sentinel", wire.ErrMalformed)
	}
	if err := wire.EncodeUntilEnd(w, p.Segments, SegmentCodec{}); err != nil {
		return err
	}
	w.U8(p.Terminator)
	return nil
}
