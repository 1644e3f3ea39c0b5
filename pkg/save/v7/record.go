// Package v7 is the tag 7 save layout. Components gain variable-length
// settings, word sizes and watched components for assembler-backed
// kinds.
package v7

import (
	"fmt"
	"log/slog"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/save/hub"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Tag is the leading byte of a v7 save.
const Tag = 7

const textPrefix = wire.PrefixU16

type Circuit struct {
	hub.Header
	Components wire.Sequence[Component]
	Wires      wire.Sequence[Wire]
}

func (*Circuit) Tag() byte { return Tag }

type Component struct {
	Kind         Kind
	Position     geom.Point
	Rotation     uint8
	PermanentID  uint64
	CustomString string
	Settings     wire.Sequence[uint64]
	BufferSize   int64
	UIOrder      int16
	WordSize     int64
	// Unused is carried so the component re-encodes byte for byte.
	Unused int64

	Custom    *CustomData
	Assembler *AssemblerInfo
}

// IDPair is an (id, value) tuple used by static states and linked word
// sizes.
type IDPair = wire.Pair[int64, int64]

type CustomData struct {
	ID              int64
	StaticStates    wire.Sequence[IDPair]
	LinkedWordSizes wire.Sequence[IDPair]
}

// Program is a (name, source) pair.
type Program = wire.Pair[string, string]

type WatchedComponent struct {
	PermanentID int64
	InnerID     int64
	Name        string
}

type AssemblerInfo struct {
	Programs wire.Sequence[Program]
	Watched  wire.Sequence[WatchedComponent]
}

func hasCustom(k Kind) bool { return k == KindCustom }

func hasAssembler(k Kind) bool {
	switch k {
	case KindAssembler, KindProbeMemoryBit, KindImmProbeMemoryBit, KindProbeMemoryWord,
		KindStaticValue, KindConsole, KindPixelScreen:
		return true
	}
	return false
}

var (
	idPairCodec wire.Codec[IDPair] = wire.PairCodec[int64, int64]{
		First:  wire.Int64Codec{},
		Second: wire.Int64Codec{},
	}
	programCodec wire.Codec[Program] = wire.PairCodec[string, string]{
		First:  wire.TextCodec{Prefix: textPrefix},
		Second: wire.TextCodec{Prefix: textPrefix},
	}
)

type WatchedComponentCodec struct{}

func (WatchedComponentCodec) Decode(c *wire.Cursor) (WatchedComponent, error) {
	var (
		out WatchedComponent
		err error
	)
	if out.PermanentID, err = c.I64(); err != nil {
		return out, err
	}
	if out.InnerID, err = c.I64(); err != nil {
		return out, err
	}
	out.Name, err = c.Text(textPrefix)
	return out, err
}

func (WatchedComponentCodec) Encode(w *wire.Writer, v WatchedComponent) error {
	w.I64(v.PermanentID)
	w.I64(v.InnerID)
	return w.Text(textPrefix, v.Name)
}

func decodeCustom(c *wire.Cursor) (*CustomData, error) {
	cd := new(CustomData)
	var err error
	if cd.ID, err = c.I64(); err != nil {
		return nil, err
	}
	if cd.StaticStates, err = wire.DecodeWithPrefix(c, wire.PrefixU16, idPairCodec); err != nil {
		return nil, fmt.Errorf("static states: %w", err)
	}
	if cd.LinkedWordSizes, err = wire.DecodeWithPrefix(c, wire.PrefixU16, idPairCodec); err != nil {
		return nil, fmt.Errorf("linked word sizes: %w", err)
	}
	return cd, nil
}

func decodeAssembler(c *wire.Cursor) (*AssemblerInfo, error) {
	ai := new(AssemblerInfo)
	var err error
	if ai.Programs, err = wire.DecodeWithPrefix(c, wire.PrefixU16, programCodec); err != nil {
		return nil, fmt.Errorf("programs: %w", err)
	}
	if ai.Watched, err = wire.DecodeWithPrefix(c, wire.PrefixU16, wire.Codec[WatchedComponent](WatchedComponentCodec{})); err != nil {
		return nil, fmt.Errorf("watched components: %w", err)
	}
	return ai, nil
}

type ComponentCodec struct{}

func (ComponentCodec) Decode(c *wire.Cursor) (Component, error) {
	var (
		out Component
		err error
	)
	if out.Kind, err = wire.DecodeKind[Kind](c); err != nil {
		return out, err
	}
	if out.Position, err = (geom.PointCodec{}).Decode(c); err != nil {
		return out, err
	}
	if out.Rotation, err = c.U8(); err != nil {
		return out, err
	}
	if out.PermanentID, err = c.U64(); err != nil {
		return out, err
	}
	if out.CustomString, err = c.Text(textPrefix); err != nil {
		return out, err
	}
	if out.Settings, err = wire.DecodeWithPrefix(c, wire.PrefixU16, wire.Codec[uint64](wire.Uint64Codec{})); err != nil {
		return out, fmt.Errorf("settings: %w", err)
	}
	if out.BufferSize, err = c.I64(); err != nil {
		return out, err
	}
	if out.UIOrder, err = c.I16(); err != nil {
		return out, err
	}
	if out.WordSize, err = c.I64(); err != nil {
		return out, err
	}
	if out.Unused, err = c.I64(); err != nil {
		return out, err
	}
	if hasCustom(out.Kind) {
		if out.Custom, err = decodeCustom(c); err != nil {
			return out, fmt.Errorf("custom data: %w", err)
		}
	}
	if hasAssembler(out.Kind) {
		if out.Assembler, err = decodeAssembler(c); err != nil {
			return out, fmt.Errorf("assembler info: %w", err)
		}
	}
	return out, nil
}

func (ComponentCodec) Encode(w *wire.Writer, v Component) error {
	if !v.Kind.Known() {
		return fmt.Errorf("%w: component kind %d", wire.ErrUnrecognized, uint16(v.Kind))
	}
	if hasCustom(v.Kind) != (v.Custom != nil) {
		return fmt.Errorf("%w: %s component custom data presence", wire.ErrInvariant, v.Kind)
	}
	if hasAssembler(v.Kind) != (v.Assembler != nil) {
		return fmt.Errorf("%w: %s component assembler info presence", wire.ErrInvariant, v.Kind)
	}
	w.U16(uint16(v.Kind))
	if err := (geom.PointCodec{}).Encode(w, v.Position); err != nil {
		return err
	}
	w.U8(v.Rotation)
	w.U64(v.PermanentID)
	if err := w.Text(textPrefix, v.CustomString); err != nil {
		return err
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixU16, v.Settings, wire.Codec[uint64](wire.Uint64Codec{})); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	w.I64(v.BufferSize)
	w.I16(v.UIOrder)
	w.I64(v.WordSize)
	w.I64(v.Unused)
	if cd := v.Custom; cd != nil {
		w.I64(cd.ID)
		if err := wire.EncodeWithPrefix(w, wire.PrefixU16, cd.StaticStates, idPairCodec); err != nil {
			return fmt.Errorf("static states: %w", err)
		}
		if err := wire.EncodeWithPrefix(w, wire.PrefixU16, cd.LinkedWordSizes, idPairCodec); err != nil {
			return fmt.Errorf("linked word sizes: %w", err)
		}
	}
	if ai := v.Assembler; ai != nil {
		if err := wire.EncodeWithPrefix(w, wire.PrefixU16, ai.Programs, programCodec); err != nil {
			return fmt.Errorf("programs: %w", err)
		}
		if err := wire.EncodeWithPrefix(w, wire.PrefixU16, ai.Watched, wire.Codec[WatchedComponent](WatchedComponentCodec{})); err != nil {
			return fmt.Errorf("watched components: %w", err)
		}
	}
	return nil
}

type Wire struct {
	Color   uint8
	Comment string
	Start   geom.Point
	Path    geom.Path
}

func (w Wire) Route() (geom.Point, geom.Path) { return w.Start, w.Path }

type WireCodec struct{}

func (WireCodec) Decode(c *wire.Cursor) (Wire, error) {
	var (
		out Wire
		err error
	)
	if out.Color, err = c.U8(); err != nil {
		return out, err
	}
	if out.Comment, err = c.Text(textPrefix); err != nil {
		return out, err
	}
	if out.Start, err = (geom.PointCodec{}).Decode(c); err != nil {
		return out, err
	}
	out.Path, err = (geom.PathCodec{}).Decode(c)
	return out, err
}

func (WireCodec) Encode(w *wire.Writer, v Wire) error {
	w.U8(v.Color)
	if err := w.Text(textPrefix, v.Comment); err != nil {
		return err
	}
	if err := (geom.PointCodec{}).Encode(w, v.Start); err != nil {
		return err
	}
	return geom.PathCodec{}.Encode(w, v.Path)
}

// Decode reads a decompressed v7 body and runs the wire overlap check.
func Decode(c *wire.Cursor, log *slog.Logger) (*Circuit, error) {
	h, err := hub.DecodeHeader(c)
	if err != nil {
		return nil, err
	}
	s := &Circuit{Header: h}
	if s.Components, err = wire.DecodeWithPrefix(c, wire.PrefixU64, wire.Codec[Component](ComponentCodec{})); err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	if s.Wires, err = wire.DecodeWithPrefix(c, wire.PrefixU64, wire.Codec[Wire](WireCodec{})); err != nil {
		return nil, fmt.Errorf("wires: %w", err)
	}
	if err := geom.CheckOverlaps(s.Wires, log); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Circuit) Encode(w *wire.Writer) error {
	if err := s.Header.Encode(w); err != nil {
		return err
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixU64, s.Components, wire.Codec[Component](ComponentCodec{})); err != nil {
		return fmt.Errorf("components: %w", err)
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixU64, s.Wires, wire.Codec[Wire](WireCodec{})); err != nil {
		return fmt.Errorf("wires: %w", err)
	}
	return nil
}
