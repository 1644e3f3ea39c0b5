package geom

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rawbytedev/tcsave/internal/common"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

// Routed is a wire record that knows where it starts and how it runs.
type Routed interface {
	Route() (start Point, path Path)
}

// Edge is the direction-independent key of a wire: A <= B.
type Edge struct {
	A Point
	B Point
}

func EdgeOf(p, q Point) Edge {
	if q.Less(p) {
		return Edge{A: q, B: p}
	}
	return Edge{A: p, B: q}
}

// Overlap reports wire Wire sharing its edge with the most recent
// earlier wire Previous.
type Overlap struct {
	Edge     Edge
	Wire     int
	Previous int
}

// OverlapError lists every duplicate found in one wire list.
type OverlapError struct {
	Overlaps []Overlap
}

func (e *OverlapError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d overlapping wire(s):", len(e.Overlaps))
	for _, o := range e.Overlaps {
		fmt.Fprintf(&b, " wire %d duplicates wire %d on %v-%v;", o.Wire, o.Previous, o.Edge.A, o.Edge.B)
	}
	return strings.TrimSuffix(b.String(), ";")
}

func (e *OverlapError) Unwrap() error { return wire.ErrInvariant }

// CheckOverlaps computes the edge of every segment-routed wire and fails
// if two wires share one. Teleport wires are skipped. All wires are
// visited before failing so the error carries every duplicate seen.
func CheckOverlaps[W Routed](wires wire.Sequence[W], log *slog.Logger) error {
	log = common.Logger(log)
	seen := make(map[Edge]int, wires.Len())
	var overlaps []Overlap
	err := wires.Each(func(i int, w W) error {
		start, path := w.Route()
		if path.Teleport {
			return nil
		}
		end, err := path.End(start)
		if err != nil {
			return fmt.Errorf("wire %d: %w", i, err)
		}
		key := EdgeOf(start, end)
		if prev, ok := seen[key]; ok {
			overlaps = append(overlaps, Overlap{Edge: key, Wire: i, Previous: prev})
			log.Warn("wire overlaps an earlier wire",
				slog.Int("wire", i),
				slog.Int("previous", prev),
				slog.String("from", key.A.String()),
				slog.String("to", key.B.String()))
		}
		seen[key] = i
		return nil
	})
	if err != nil {
		return err
	}
	if len(overlaps) > 0 {
		return &OverlapError{Overlaps: overlaps}
	}
	return nil
}
