// Package v10 is the newest save layout. Tags 8 and 9 share it.
package v10

import (
	"fmt"
	"log/slog"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/save/hub"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Tag is the leading byte written for a v10 save. Saves tagged 8 and 9
// use the same layout.
const (
	Tag   = 10
	TagV8 = 8
	TagV9 = 9
)

const textPrefix = wire.PrefixU16

type Circuit struct {
	// Version is the tag the circuit was read from; zero encodes as Tag.
	Version uint8
	hub.Header
	Components wire.Sequence[Component]
	Wires      wire.Sequence[Wire]
}

func (s *Circuit) Tag() byte {
	if s.Version == 0 {
		return Tag
	}
	return s.Version
}

type Component struct {
	Kind             Kind
	Position         geom.Point
	Rotation         uint8
	PermanentID      uint64
	CustomString     string
	Settings         wire.Sequence[uint64]
	BufferSize       int64
	UIOrder          int16
	WordSize         int64
	LinkedComponents wire.Sequence[LinkedComponent]
	SelectedPrograms wire.Sequence[Program]

	Custom *CustomData // Custom only
}

type LinkedComponent struct {
	PermanentID int64
	InnerID     int64
	Name        string
	Offset      int64
}

// Program is a (name, source) pair.
type Program = wire.Pair[string, string]

// StaticState is an (id, value) pair of a custom component.
type StaticState = wire.Pair[int64, int64]

type CustomData struct {
	ID           int64
	StaticStates wire.Sequence[StaticState]
}

var (
	programCodec wire.Codec[Program] = wire.PairCodec[string, string]{
		First:  wire.TextCodec{Prefix: textPrefix},
		Second: wire.TextCodec{Prefix: textPrefix},
	}
	staticStateCodec wire.Codec[StaticState] = wire.PairCodec[int64, int64]{
		First:  wire.Int64Codec{},
		Second: wire.Int64Codec{},
	}
)

type LinkedComponentCodec struct{}

func (LinkedComponentCodec) Decode(c *wire.Cursor) (LinkedComponent, error) {
	var (
		out LinkedComponent
		err error
	)
	if out.PermanentID, err = c.I64(); err != nil {
		return out, err
	}
	if out.InnerID, err = c.I64(); err != nil {
		return out, err
	}
	if out.Name, err = c.Text(textPrefix); err != nil {
		return out, err
	}
	out.Offset, err = c.I64()
	return out, err
}

func (LinkedComponentCodec) Encode(w *wire.Writer, v LinkedComponent) error {
	w.I64(v.PermanentID)
	w.I64(v.InnerID)
	if err := w.Text(textPrefix, v.Name); err != nil {
		return err
	}
	w.I64(v.Offset)
	return nil
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
	if out.LinkedComponents, err = wire.DecodeWithPrefix(c, wire.PrefixU16, wire.Codec[LinkedComponent](LinkedComponentCodec{})); err != nil {
		return out, fmt.Errorf("linked components: %w", err)
	}
	if out.SelectedPrograms, err = wire.DecodeWithPrefix(c, wire.PrefixU16, programCodec); err != nil {
		return out, fmt.Errorf("selected programs: %w", err)
	}
	if out.Kind == KindCustom {
		cd := new(CustomData)
		if cd.ID, err = c.I64(); err != nil {
			return out, fmt.Errorf("custom data: %w", err)
		}
		if cd.StaticStates, err = wire.DecodeWithPrefix(c, wire.PrefixU16, staticStateCodec); err != nil {
			return out, fmt.Errorf("custom data: static states: %w", err)
		}
		out.Custom = cd
	}
	return out, nil
}

func (ComponentCodec) Encode(w *wire.Writer, v Component) error {
	if !v.Kind.Known() {
		return fmt.Errorf("%w: component kind %d", wire.ErrUnrecognized, uint16(v.Kind))
	}
	if (v.Kind == KindCustom) != (v.Custom != nil) {
		return fmt.Errorf("%w: %s component custom data presence", wire.ErrInvariant, v.Kind)
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
	if err := wire.EncodeWithPrefix(w, wire.PrefixU16, v.LinkedComponents, wire.Codec[LinkedComponent](LinkedComponentCodec{})); err != nil {
		return fmt.Errorf("linked components: %w", err)
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixU16, v.SelectedPrograms, programCodec); err != nil {
		return fmt.Errorf("selected programs: %w", err)
	}
	if cd := v.Custom; cd != nil {
		w.I64(cd.ID)
		if err := wire.EncodeWithPrefix(w, wire.PrefixU16, cd.StaticStates, staticStateCodec); err != nil {
			return fmt.Errorf("custom data: static states: %w", err)
		}
	}
	return nil
}

// checkComponents enforces the per-kind rules that hold across the
// whole component list.
func checkComponents(components wire.Sequence[Component]) error {
	return components.Each(func(i int, comp Component) error {
		switch comp.Kind {
		case KindStaticIndexer:
			if comp.WordSize <= 0 {
				return fmt.Errorf("component %d: %w: %s needs a positive word size, has %d",
					i, wire.ErrInvariant, comp.Kind, comp.WordSize)
			}
		case KindMakerWord2, KindMakerWord4, KindMakerWord8:
			return fmt.Errorf("component %d: %w: %s", i, wire.ErrUnsupported, comp.Kind)
		}
		return nil
	})
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

// Decode reads a decompressed body, then checks the component rules
// and wire overlaps. The caller sets Version.
func Decode(c *wire.Cursor, log *slog.Logger) (*Circuit, error) {
	h, err := hub.DecodeHeader(c)
	if err != nil {
		return nil, err
	}
	s := &Circuit{Header: h}
	if s.Components, err = wire.DecodeWithPrefix(c, wire.PrefixU64, wire.Codec[Component](ComponentCodec{})); err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	if err := checkComponents(s.Components); err != nil {
		return nil, err
	}
	if s.Wires, err = wire.DecodeWithPrefix(c, wire.PrefixU64, wire.Codec[Wire](WireCodec{})); err != nil {
		return nil, fmt.Errorf("wires: %w", err)
	}
	if err := geom.CheckOverlaps(s.Wires, log); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes the uncompressed body. Components that Decode would
// reject are refused here too.
func (s *Circuit) Encode(w *wire.Writer) error {
	if err := checkComponents(s.Components); err != nil {
		return err
	}
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
