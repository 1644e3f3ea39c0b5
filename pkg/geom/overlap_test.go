package geom

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/tcsave/pkg/wire"
)

type testWire struct {
	start Point
	path  Path
}

func (w testWire) Route() (Point, Path) { return w.start, w.path }

func run(start Point, segs ...Segment) testWire { return testWire{start: start, path: NewRoute(segs...)} }

func TestCheckOverlapsIgnoresDirection(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	wires := wire.Own(
		run(Point{0, 0}, Segment{Length: 5, Direction: Right}),
		run(Point{5, 0}, Segment{Length: 2, Direction: Left}, Segment{Length: 3, Direction: Left}),
	)
	err := CheckOverlaps(wires, log)
	require.ErrorIs(t, err, wire.ErrInvariant)

	var oe *OverlapError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, []Overlap{{
		Edge:     Edge{A: Point{0, 0}, B: Point{5, 0}},
		Wire:     1,
		Previous: 0,
	}}, oe.Overlaps)
	assert.Contains(t, logs.String(), "wire overlaps an earlier wire")
}

func TestCheckOverlapsReportsEveryDuplicate(t *testing.T) {
	same := run(Point{1, 1}, Segment{Length: 1, Direction: Down})
	wires := wire.Own(same, run(Point{9, 9}, Segment{Length: 1, Direction: Up}), same, same)

	var oe *OverlapError
	require.True(t, errors.As(CheckOverlaps(wires, nil), &oe))
	require.Len(t, oe.Overlaps, 2)
	assert.Equal(t, 2, oe.Overlaps[0].Wire)
	assert.Equal(t, 0, oe.Overlaps[0].Previous)
	assert.Equal(t, 3, oe.Overlaps[1].Wire)
	assert.Equal(t, 2, oe.Overlaps[1].Previous)
}

func TestCheckOverlapsSkipsTeleports(t *testing.T) {
	tp := testWire{start: Point{0, 0}, path: TeleportTo(Point{5, 0})}
	wires := wire.Own(tp, tp, run(Point{0, 0}, Segment{Length: 5, Direction: Right}))
	assert.NoError(t, CheckOverlaps(wires, nil))
}

func TestCheckOverlapsDistinctWires(t *testing.T) {
	wires := wire.Own(
		run(Point{0, 0}, Segment{Length: 5, Direction: Right}),
		run(Point{0, 0}, Segment{Length: 5, Direction: Down}),
		run(Point{0, 0}),
	)
	assert.NoError(t, CheckOverlaps(wires, nil))
	assert.NoError(t, CheckOverlaps(wire.Sequence[testWire]{}, nil))
}
