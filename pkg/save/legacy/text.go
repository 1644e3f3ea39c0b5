package legacy

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/wire"
	"github.com/rawbytedev/tcsave/zc"
)

const (
	partSep      = "|"
	recordSep    = ";"
	fieldSep     = "`"
	coordSep     = ","
	componentLen = 6
)

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for i, name := range kindNames {
		m[name] = Kind(i)
	}
	return m
}()

// ParseKind looks a kind up by its name token.
func ParseKind(name string) (Kind, error) {
	k, ok := kindByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: component kind %q", wire.ErrUnrecognized, name)
	}
	return k, nil
}

// DecodeText reads a tag '1' body:
//
//	ignored|components|circuits|nand,delay[|version]
//
// Components are kind`x`y`rotation`id`custom, circuits are
// id`kind`color`comment`x0,y0,x1,y1,... and both lists are ';'
// separated. A Custom component may carry its id as a seventh field;
// without one the custom string itself must be the id.
func DecodeText(body []byte, opts zc.Options) (*Save, error) {
	if !utf8.Valid(body) {
		return nil, wire.Errorf(wire.ErrMalformed, 0, "text save", "invalid UTF-8")
	}
	parts := strings.Split(opts.String(body), partSep)
	if len(parts) != 4 && len(parts) != 5 {
		return nil, malformed("text save", "%d '|' separated parts, want 4 or 5", len(parts))
	}

	s := &Save{
		Format:      FormatText,
		Nand:        DefaultNand,
		Delay:       DefaultDelay,
		MenuVisible: true,
		ClockSpeed:  DefaultClockSpeed,
		Components:  wire.Own[Component](),
		Circuits:    wire.Own[Circuit](),
	}
	if parts[3] != "" {
		scores := strings.Split(parts[3], coordSep)
		if len(scores) != 2 {
			return nil, malformed("scores", "%d values, want nand,delay", len(scores))
		}
		var err error
		if s.Nand, err = parseUint[uint32]("nand", scores[0]); err != nil {
			return nil, err
		}
		if s.Delay, err = parseUint[uint32]("delay", scores[1]); err != nil {
			return nil, err
		}
	}
	if len(parts) == 5 && parts[4] != "" {
		v, err := strconv.ParseInt(parts[4], 10, 64)
		if err != nil {
			return nil, malformed("version", "%v", err)
		}
		s.Version = v
	}
	if parts[1] != "" {
		for i, record := range strings.Split(parts[1], recordSep) {
			comp, err := parseComponent(record)
			if err != nil {
				return nil, fmt.Errorf("component %d: %w", i, err)
			}
			s.Components.Append(comp)
		}
	}
	if parts[2] != "" {
		for i, record := range strings.Split(parts[2], recordSep) {
			circ, err := parseCircuit(record)
			if err != nil {
				return nil, fmt.Errorf("circuit %d: %w", i, err)
			}
			s.Circuits.Append(circ)
		}
	}
	return s, nil
}

func parseComponent(record string) (Component, error) {
	f := strings.Split(record, fieldSep)
	want := componentLen
	if f[0] == KindCustom.String() && len(f) == componentLen+1 {
		want++
	}
	if len(f) != want {
		return Component{}, malformed("component", "%d fields", len(f))
	}
	var (
		out Component
		err error
	)
	out.Kind = f[0]
	if out.Position.X, err = parseInt[int16]("x", f[1]); err != nil {
		return out, err
	}
	if out.Position.Y, err = parseInt[int16]("y", f[2]); err != nil {
		return out, err
	}
	if out.Rotation, err = parseUint[uint8]("rotation", f[3]); err != nil {
		return out, err
	}
	if out.PermanentID, err = parseUint[uint32]("permanent id", f[4]); err != nil {
		return out, err
	}
	out.CustomString = f[5]
	if out.Kind == KindCustom.String() {
		id := out.CustomString
		if len(f) > componentLen {
			id = f[componentLen]
		}
		if out.CustomID, err = parseInt[int64]("custom id", id); err != nil {
			return out, err
		}
	}
	return out, nil
}

func parseCircuit(record string) (Circuit, error) {
	f := strings.Split(record, fieldSep)
	if len(f) != 5 {
		return Circuit{}, malformed("circuit", "%d fields, want 5", len(f))
	}
	var (
		out Circuit
		err error
	)
	if out.PermanentID, err = parseUint[uint32]("permanent id", f[0]); err != nil {
		return out, err
	}
	kind, err := parseUint[uint8]("kind", f[1])
	if err != nil {
		return out, err
	}
	if out.Kind, err = parseCircuitKind(kind); err != nil {
		return out, err
	}
	if out.Color, err = parseUint[uint8]("color", f[2]); err != nil {
		return out, err
	}
	out.Comment = f[3]
	out.Path = wire.Own[geom.Point]()
	if f[4] == "" {
		return out, nil
	}
	coords := strings.Split(f[4], coordSep)
	if len(coords)%2 != 0 {
		return out, malformed("path", "odd coordinate count %d", len(coords))
	}
	for i := 0; i < len(coords); i += 2 {
		var p geom.Point
		if p.X, err = parseInt[int16]("path x", coords[i]); err != nil {
			return out, err
		}
		if p.Y, err = parseInt[int16]("path y", coords[i+1]); err != nil {
			return out, err
		}
		out.Path.Append(p)
	}
	return out, nil
}

func malformed(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", wire.ErrMalformed, field, fmt.Sprintf(format, args...))
}

type signed interface{ int8 | int16 | int32 | int64 }

type unsigned interface{ uint8 | uint16 | uint32 | uint64 }

func parseInt[T signed](field, s string) (T, error) {
	var zero T
	v, err := strconv.ParseInt(s, 10, bitSize(zero))
	if err != nil {
		return zero, malformed(field, "%v", err)
	}
	return T(v), nil
}

func parseUint[T unsigned](field, s string) (T, error) {
	var zero T
	v, err := strconv.ParseUint(s, 10, bitSize(zero))
	if err != nil {
		return zero, malformed(field, "%v", err)
	}
	return T(v), nil
}

func bitSize[T signed | unsigned](v T) int {
	switch any(v).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	}
	return 64
}
