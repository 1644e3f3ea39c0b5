package main

import (
	"fmt"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/save"
	"github.com/rawbytedev/tcsave/pkg/save/legacy"
	"github.com/rawbytedev/tcsave/pkg/save/v10"
	"github.com/rawbytedev/tcsave/pkg/save/v6"
	"github.com/rawbytedev/tcsave/pkg/save/v7"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Summary is the per-file YAML output.
type Summary struct {
	File        string         `yaml:"file,omitempty"`
	Tag         int            `yaml:"tag"`
	Format      string         `yaml:"format"`
	Description string         `yaml:"description,omitempty"`
	Components  int            `yaml:"components"`
	Wires       int            `yaml:"wires"`
	Teleports   int            `yaml:"teleports,omitempty"`
	Kinds       map[string]int `yaml:"kinds,omitempty"`
}

// Summarize walks every component and wire of rec once.
func Summarize(rec save.Record) (Summary, error) {
	s := Summary{Tag: int(rec.Tag())}
	var err error
	switch r := rec.(type) {
	case *legacy.Save:
		s.Format = "legacy binary"
		if r.Format == legacy.FormatText {
			s.Format = "legacy text"
		}
		s.Description = r.Description
		s.Components, s.Wires = r.Components.Len(), r.Circuits.Len()
		s.Kinds, err = countKinds(r.Components, func(c legacy.Component) string { return c.Kind })
	case *v6.Circuit:
		s.Format = "v6"
		s.Description = r.Description
		s.Components, s.Wires = r.Components.Len(), r.Wires.Len()
		if s.Kinds, err = countKinds(r.Components, func(c v6.Component) string { return c.Kind.String() }); err == nil {
			s.Teleports, err = countTeleports(r.Wires)
		}
	case *v7.Circuit:
		s.Format = "v7"
		s.Description = r.Description
		s.Components, s.Wires = r.Components.Len(), r.Wires.Len()
		if s.Kinds, err = countKinds(r.Components, func(c v7.Component) string { return c.Kind.String() }); err == nil {
			s.Teleports, err = countTeleports(r.Wires)
		}
	case *v10.Circuit:
		s.Format = "v10"
		s.Description = r.Description
		s.Components, s.Wires = r.Components.Len(), r.Wires.Len()
		if s.Kinds, err = countKinds(r.Components, func(c v10.Component) string { return c.Kind.String() }); err == nil {
			s.Teleports, err = countTeleports(r.Wires)
		}
	default:
		return s, fmt.Errorf("unexpected record %T", rec)
	}
	return s, err
}

func countKinds[C any](components wire.Sequence[C], kind func(C) string) (map[string]int, error) {
	if components.Len() == 0 {
		return nil, nil
	}
	kinds := make(map[string]int)
	err := components.Each(func(_ int, c C) error {
		kinds[kind(c)]++
		return nil
	})
	return kinds, err
}

func countTeleports[W geom.Routed](wires wire.Sequence[W]) (int, error) {
	n := 0
	err := wires.Each(func(_ int, w W) error {
		if _, p := w.Route(); p.Teleport {
			n++
		}
		return nil
	})
	return n, err
}
