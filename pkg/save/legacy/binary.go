// Package legacy reads the two oldest save layouts: the raw binary
// schema (tag 0) and the pipe-delimited text schema (tag '1'). Both
// decode into the same Save record.
package legacy

import (
	"fmt"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Format is the tag byte a legacy save was read from.
type Format byte

const (
	FormatBinary Format = 0
	FormatText   Format = '1'
)

// Legacy text and binary saves fill these when a field is absent.
const (
	DefaultNand       = 99999
	DefaultDelay      = 99999
	DefaultClockSpeed = 100_000
)

const textPrefix = wire.PrefixI64

// CircuitKind is the bus width of a legacy circuit.
type CircuitKind uint8

const (
	CircuitBit CircuitKind = iota
	CircuitByte
	CircuitQword
)

func (k CircuitKind) String() string {
	switch k {
	case CircuitBit:
		return "Bit"
	case CircuitByte:
		return "Byte"
	case CircuitQword:
		return "Qword"
	}
	return fmt.Sprintf("CircuitKind(%d)", uint8(k))
}

func parseCircuitKind(v uint8) (CircuitKind, error) {
	if v > uint8(CircuitQword) {
		return 0, fmt.Errorf("%w: circuit kind %d", wire.ErrUnrecognized, v)
	}
	return CircuitKind(v), nil
}

type Save struct {
	Format       Format
	Version      int64
	Nand         uint32
	Delay        uint32
	MenuVisible  bool
	ClockSpeed   uint32
	NestingLevel uint8
	Dependencies wire.Sequence[int64]
	Description  string
	Components   wire.Sequence[Component]
	Circuits     wire.Sequence[Circuit]
}

func (s *Save) Tag() byte { return byte(s.Format) }

// Component keeps its kind as the name token it was saved under. The
// text format does not restrict that token; ResolveKind maps it onto
// the numeric table used by the binary format.
type Component struct {
	Kind         string
	Position     geom.Point
	Rotation     uint8
	PermanentID  uint32
	CustomString string
	CustomID     int64
	// ProgramName is set for program kinds only.
	ProgramName *string
}

func (c Component) ResolveKind() (Kind, error) { return ParseKind(c.Kind) }

func hasProgramName(k Kind) bool {
	switch k {
	case KindProgram1, KindProgram2, KindProgram3, KindProgram4, KindQwordProgram:
		return true
	}
	return false
}

type ComponentCodec struct{}

func (ComponentCodec) Decode(c *wire.Cursor) (Component, error) {
	var (
		out Component
		err error
	)
	kind, err := wire.DecodeKind[Kind](c)
	if err != nil {
		return out, err
	}
	out.Kind = kind.String()
	if out.Position, err = (geom.BytePointCodec{}).Decode(c); err != nil {
		return out, err
	}
	if out.Rotation, err = c.U8(); err != nil {
		return out, err
	}
	if out.PermanentID, err = c.U32(); err != nil {
		return out, err
	}
	if out.CustomString, err = c.Text(textPrefix); err != nil {
		return out, err
	}
	switch {
	case hasProgramName(kind):
		name, err := c.Text(textPrefix)
		if err != nil {
			return out, fmt.Errorf("program name: %w", err)
		}
		out.ProgramName = &name
	case kind == KindCustom:
		if out.CustomID, err = c.I64(); err != nil {
			return out, fmt.Errorf("custom id: %w", err)
		}
	}
	return out, nil
}

func (ComponentCodec) Encode(w *wire.Writer, v Component) error {
	kind, err := v.ResolveKind()
	if err != nil {
		return err
	}
	if hasProgramName(kind) != (v.ProgramName != nil) {
		return fmt.Errorf("%w: %s component program name presence", wire.ErrInvariant, kind)
	}
	w.U16(uint16(kind))
	if err := (geom.BytePointCodec{}).Encode(w, v.Position); err != nil {
		return err
	}
	w.U8(v.Rotation)
	w.U32(v.PermanentID)
	if err := w.Text(textPrefix, v.CustomString); err != nil {
		return err
	}
	switch {
	case v.ProgramName != nil:
		return w.Text(textPrefix, *v.ProgramName)
	case kind == KindCustom:
		w.I64(v.CustomID)
	}
	return nil
}

// Circuit is a legacy wire: a point list rather than a packed path.
type Circuit struct {
	PermanentID uint32
	Kind        CircuitKind
	Color       uint8
	Comment     string
	Path        wire.Sequence[geom.Point]
}

type CircuitCodec struct{}

func (CircuitCodec) Decode(c *wire.Cursor) (Circuit, error) {
	var (
		out Circuit
		err error
	)
	if out.PermanentID, err = c.U32(); err != nil {
		return out, err
	}
	at := c.Offset()
	kind, err := c.U8()
	if err != nil {
		return out, err
	}
	if out.Kind, err = parseCircuitKind(kind); err != nil {
		return out, &wire.Error{Offset: at, What: "circuit kind", Err: err}
	}
	if out.Color, err = c.U8(); err != nil {
		return out, err
	}
	if out.Comment, err = c.Text(textPrefix); err != nil {
		return out, err
	}
	if out.Path, err = wire.DecodeWithPrefix(c, wire.PrefixI64, wire.Codec[geom.Point](geom.BytePointCodec{})); err != nil {
		return out, fmt.Errorf("path: %w", err)
	}
	return out, nil
}

func (CircuitCodec) Encode(w *wire.Writer, v Circuit) error {
	if v.Kind > CircuitQword {
		return fmt.Errorf("%w: circuit kind %d", wire.ErrUnrecognized, v.Kind)
	}
	w.U32(v.PermanentID)
	w.U8(uint8(v.Kind))
	w.U8(v.Color)
	if err := w.Text(textPrefix, v.Comment); err != nil {
		return err
	}
	return wire.EncodeWithPrefix(w, wire.PrefixI64, v.Path, wire.Codec[geom.Point](geom.BytePointCodec{}))
}

// DecodeBinary reads a tag 0 body.
func DecodeBinary(c *wire.Cursor) (*Save, error) {
	s := &Save{Format: FormatBinary}
	var err error
	if s.Version, err = c.I64(); err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	if s.Nand, err = c.U32(); err != nil {
		return nil, fmt.Errorf("nand: %w", err)
	}
	if s.Delay, err = c.U32(); err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}
	if s.MenuVisible, err = c.Bool(); err != nil {
		return nil, fmt.Errorf("menu visible: %w", err)
	}
	if s.ClockSpeed, err = c.U32(); err != nil {
		return nil, fmt.Errorf("clock speed: %w", err)
	}
	if s.NestingLevel, err = c.U8(); err != nil {
		return nil, fmt.Errorf("nesting level: %w", err)
	}
	if s.Dependencies, err = wire.DecodeWithPrefix(c, wire.PrefixI64, wire.Codec[int64](wire.Int64Codec{})); err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}
	if s.Description, err = c.Text(textPrefix); err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	if s.Components, err = wire.DecodeWithPrefix(c, wire.PrefixI64, wire.Codec[Component](ComponentCodec{})); err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	if s.Circuits, err = wire.DecodeWithPrefix(c, wire.PrefixI64, wire.Codec[Circuit](CircuitCodec{})); err != nil {
		return nil, fmt.Errorf("circuits: %w", err)
	}
	return s, nil
}

// Encode writes s in the tag 0 layout, whichever format it was read
// from. Text-only content that the binary layout cannot hold (unknown
// kind tokens, coordinates outside int8) is an error.
func (s *Save) Encode(w *wire.Writer) error {
	w.I64(s.Version)
	w.U32(s.Nand)
	w.U32(s.Delay)
	w.Bool(s.MenuVisible)
	w.U32(s.ClockSpeed)
	w.U8(s.NestingLevel)
	if err := wire.EncodeWithPrefix(w, wire.PrefixI64, s.Dependencies, wire.Codec[int64](wire.Int64Codec{})); err != nil {
		return fmt.Errorf("dependencies: %w", err)
	}
	if err := w.Text(textPrefix, s.Description); err != nil {
		return fmt.Errorf("description: %w", err)
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixI64, s.Components, wire.Codec[Component](ComponentCodec{})); err != nil {
		return fmt.Errorf("components: %w", err)
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixI64, s.Circuits, wire.Codec[Circuit](CircuitCodec{})); err != nil {
		return fmt.Errorf("circuits: %w", err)
	}
	return nil
}
