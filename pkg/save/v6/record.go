// Package v6 is the tag 6 save layout: the first snappy-compressed
// format, with fixed two-slot component settings and wire widths.
package v6

import (
	"fmt"
	"log/slog"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/save/hub"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Tag is the leading byte of a v6 save.
const Tag = 6

const textPrefix = wire.PrefixU16

type Circuit struct {
	CustomID       int64
	HubID          uint32
	Gate           int64
	Delay          int64
	MenuVisible    bool
	ClockSpeed     uint32
	Dependencies   wire.Sequence[int64]
	Description    string
	Camera         geom.Point
	Sync           hub.SyncState
	PlayerData     wire.Sequence[uint8]
	HubDescription string
	Components     wire.Sequence[Component]
	Wires          wire.Sequence[Wire]
}

func (*Circuit) Tag() byte { return Tag }

type Component struct {
	Kind         Kind
	Position     geom.Point
	Rotation     uint8
	PermanentID  uint64
	CustomString string
	Settings     [2]uint64
	UIOrder      int16

	Custom    *CustomData    // Custom only
	Assembler *AssemblerInfo // program kinds only
}

type CustomData struct {
	ID    int64
	Nudge geom.Point
}

// Program binds a program id to its source name.
type Program = wire.Pair[int64, string]

type AssemblerInfo struct {
	Programs wire.Sequence[Program]
}

func hasCustom(k Kind) bool { return k == KindCustom }

func hasAssembler(k Kind) bool {
	switch k {
	case KindProgram, KindProgram81, KindProgram84:
		return true
	}
	return false
}

var programCodec wire.Codec[Program] = wire.PairCodec[int64, string]{
	First:  wire.Int64Codec{},
	Second: wire.TextCodec{Prefix: textPrefix},
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
	for i := range out.Settings {
		if out.Settings[i], err = c.U64(); err != nil {
			return out, err
		}
	}
	if out.UIOrder, err = c.I16(); err != nil {
		return out, err
	}
	if hasCustom(out.Kind) {
		cd := new(CustomData)
		if cd.ID, err = c.I64(); err != nil {
			return out, fmt.Errorf("custom data: %w", err)
		}
		if cd.Nudge, err = (geom.PointCodec{}).Decode(c); err != nil {
			return out, fmt.Errorf("custom data: %w", err)
		}
		out.Custom = cd
	}
	if hasAssembler(out.Kind) {
		programs, err := wire.DecodeWithPrefix(c, wire.PrefixU16, programCodec)
		if err != nil {
			return out, fmt.Errorf("assembler programs: %w", err)
		}
		out.Assembler = &AssemblerInfo{Programs: programs}
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
	for _, s := range v.Settings {
		w.U64(s)
	}
	w.I16(v.UIOrder)
	if v.Custom != nil {
		w.I64(v.Custom.ID)
		if err := (geom.PointCodec{}).Encode(w, v.Custom.Nudge); err != nil {
			return err
		}
	}
	if v.Assembler != nil {
		if err := wire.EncodeWithPrefix(w, wire.PrefixU16, v.Assembler.Programs, programCodec); err != nil {
			return fmt.Errorf("assembler programs: %w", err)
		}
	}
	return nil
}

type Wire struct {
	Width   uint8
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
	if out.Width, err = c.U8(); err != nil {
		return out, err
	}
	if out.Color, err = c.U8(); err != nil {
		return out, err
	}
	if out.Comment, err = c.Text(textPrefix); err != nil {
		return out, err
	}
	if out.Start, err = (geom.PointCodec{}).Decode(c); err != nil {
		return out, err
	}
	if out.Path, err = (geom.PathCodec{}).Decode(c); err != nil {
		return out, err
	}
	return out, nil
}

func (WireCodec) Encode(w *wire.Writer, v Wire) error {
	w.U8(v.Width)
	w.U8(v.Color)
	if err := w.Text(textPrefix, v.Comment); err != nil {
		return err
	}
	if err := (geom.PointCodec{}).Encode(w, v.Start); err != nil {
		return err
	}
	return geom.PathCodec{}.Encode(w, v.Path)
}

// Decode reads a decompressed v6 body and runs the wire overlap check.
func Decode(c *wire.Cursor, log *slog.Logger) (*Circuit, error) {
	s := new(Circuit)
	var err error
	if s.CustomID, err = c.I64(); err != nil {
		return nil, fmt.Errorf("custom id: %w", err)
	}
	if s.HubID, err = c.U32(); err != nil {
		return nil, fmt.Errorf("hub id: %w", err)
	}
	if s.Gate, err = c.I64(); err != nil {
		return nil, fmt.Errorf("gate: %w", err)
	}
	if s.Delay, err = c.I64(); err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}
	if s.MenuVisible, err = c.Bool(); err != nil {
		return nil, fmt.Errorf("menu visible: %w", err)
	}
	if s.ClockSpeed, err = c.U32(); err != nil {
		return nil, fmt.Errorf("clock speed: %w", err)
	}
	if s.Dependencies, err = wire.DecodeWithPrefix(c, wire.PrefixU16, wire.Codec[int64](wire.Int64Codec{})); err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}
	if s.Description, err = c.Text(textPrefix); err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	if s.Camera, err = (geom.PointCodec{}).Decode(c); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if s.Sync, err = hub.DecodeSyncState(c); err != nil {
		return nil, err
	}
	// reserved u8 and u16
	if _, err = c.Next(3, "reserved"); err != nil {
		return nil, err
	}
	if s.PlayerData, err = wire.DecodeWithPrefix(c, wire.PrefixU16, wire.Codec[uint8](wire.Uint8Codec{})); err != nil {
		return nil, fmt.Errorf("player data: %w", err)
	}
	if s.HubDescription, err = c.Text(textPrefix); err != nil {
		return nil, fmt.Errorf("hub description: %w", err)
	}
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

// Encode writes the uncompressed body. Reserved bytes are written as
// zero.
func (s *Circuit) Encode(w *wire.Writer) error {
	w.I64(s.CustomID)
	w.U32(s.HubID)
	w.I64(s.Gate)
	w.I64(s.Delay)
	w.Bool(s.MenuVisible)
	w.U32(s.ClockSpeed)
	if err := wire.EncodeWithPrefix(w, wire.PrefixU16, s.Dependencies, wire.Codec[int64](wire.Int64Codec{})); err != nil {
		return fmt.Errorf("dependencies: %w", err)
	}
	if err := w.Text(textPrefix, s.Description); err != nil {
		return fmt.Errorf("description: %w", err)
	}
	if err := (geom.PointCodec{}).Encode(w, s.Camera); err != nil {
		return err
	}
	if err := s.Sync.Encode(w); err != nil {
		return err
	}
	w.Reserve(3)
	if err := wire.EncodeWithPrefix(w, wire.PrefixU16, s.PlayerData, wire.Codec[uint8](wire.Uint8Codec{})); err != nil {
		return fmt.Errorf("player data: %w", err)
	}
	if err := w.Text(textPrefix, s.HubDescription); err != nil {
		return fmt.Errorf("hub description: %w", err)
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixU64, s.Components, wire.Codec[Component](ComponentCodec{})); err != nil {
		return fmt.Errorf("components: %w", err)
	}
	if err := wire.EncodeWithPrefix(w, wire.PrefixU64, s.Wires, wire.Codec[Wire](WireCodec{})); err != nil {
		return fmt.Errorf("wires: %w", err)
	}
	return nil
}
