package v6

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/save/hub"
	"github.com/rawbytedev/tcsave/pkg/wire"
	"github.com/rawbytedev/tcsave/zc"
)

func sampleCircuit() *Circuit {
	return &Circuit{
		CustomID:       42,
		HubID:          7,
		Gate:           12,
		Delay:          4,
		MenuVisible:    true,
		ClockSpeed:     1000,
		Dependencies:   wire.Own[int64](3, 5),
		Description:    "adder",
		Camera:         geom.Point{X: -4, Y: 9},
		Sync:           hub.Synced,
		PlayerData:     wire.Own[uint8](1, 2, 3),
		HubDescription: "hub text",
		Components: wire.Own(
			Component{Kind: KindNand, Position: geom.Point{X: 1, Y: 2}, Rotation: 1, PermanentID: 10, Settings: [2]uint64{1, 2}, UIOrder: -1},
			Component{Kind: KindCustom, PermanentID: 11, CustomString: "half adder", Custom: &CustomData{ID: 99, Nudge: geom.Point{X: 1, Y: -1}}},
			Component{Kind: KindProgram81, PermanentID: 12, Assembler: &AssemblerInfo{
				Programs: wire.Own(Program{First: 1, Second: "main.asm"}, Program{First: 2, Second: "lib.asm"}),
			}},
		),
		Wires: wire.Own(
			Wire{Width: 1, Color: 3, Comment: "carry", Start: geom.Point{X: 0, Y: 0}, Path: geom.NewRoute(
				geom.Segment{Length: 4, Direction: geom.Right},
				geom.Segment{Length: 2, Direction: geom.Down},
			)},
			Wire{Width: 8, Start: geom.Point{X: 1, Y: 1}, Path: geom.TeleportTo(geom.Point{X: 30, Y: -2})},
		),
	}
}

func encodeBody(t *testing.T, s *Circuit) []byte {
	t.Helper()
	w := wire.NewWriter(256)
	require.NoError(t, s.Encode(w))
	return w.Bytes()
}

func decodeBody(body []byte) (*Circuit, error) {
	return Decode(wire.NewCursor(body, zc.Options{}), nil)
}

// firstDiff is the index of the first byte where a and b differ.
func firstDiff(t *testing.T, a, b []byte) int {
	t.Helper()
	require.Equal(t, len(a), len(b))
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	t.Fatal("buffers are identical")
	return -1
}

func TestRoundTrip(t *testing.T) {
	body := encodeBody(t, sampleCircuit())

	got, err := decodeBody(body)
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), got.ClockSpeed)
	assert.Equal(t, hub.Synced, got.Sync)
	assert.Equal(t, "hub text", got.HubDescription)

	comps, err := got.Components.Collect()
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, KindNand, comps[0].Kind)
	assert.Equal(t, [2]uint64{1, 2}, comps[0].Settings)
	assert.Equal(t, int16(-1), comps[0].UIOrder)
	assert.Nil(t, comps[0].Custom)
	require.NotNil(t, comps[1].Custom)
	assert.Equal(t, int64(99), comps[1].Custom.ID)
	require.NotNil(t, comps[2].Assembler)
	programs, err := comps[2].Assembler.Programs.Collect()
	require.NoError(t, err)
	assert.Equal(t, []Program{{First: 1, Second: "main.asm"}, {First: 2, Second: "lib.asm"}}, programs)

	wires, err := got.Wires.Collect()
	require.NoError(t, err)
	require.Len(t, wires, 2)
	end, err := wires[0].Path.End(wires[0].Start)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 4, Y: 2}, end)
	assert.True(t, wires[1].Path.Teleport)

	again := encodeBody(t, got)
	assert.Equal(t, body, again)

	other, err := decodeBody(again)
	require.NoError(t, err)
	assert.Equal(t, got, other)
}

func TestDecodeUnknownKind(t *testing.T) {
	a := sampleCircuit()
	b := sampleCircuit()
	b.Components.Mutable()[0].Kind = KindAnd
	body := encodeBody(t, a)
	at := firstDiff(t, body, encodeBody(t, b))

	binary.LittleEndian.PutUint16(body[at:], 0xffff)
	_, err := decodeBody(body)
	require.ErrorIs(t, err, wire.ErrUnrecognized)
	var we *wire.Error
	require.True(t, errors.As(err, &we))
	assert.Equal(t, at, we.Offset)
}

func TestDecodeUnknownSyncState(t *testing.T) {
	a := sampleCircuit()
	b := sampleCircuit()
	b.Sync = hub.Unsynced
	body := encodeBody(t, a)
	at := firstDiff(t, body, encodeBody(t, b))

	body[at] = 3
	_, err := decodeBody(body)
	require.ErrorIs(t, err, wire.ErrUnrecognized)
}

func TestDecodeOverlappingWires(t *testing.T) {
	s := sampleCircuit()
	first, err := s.Wires.Collect()
	require.NoError(t, err)
	s.Wires.Append(first[0])

	_, err = decodeBody(encodeBody(t, s))
	require.ErrorIs(t, err, wire.ErrInvariant)
	var oe *geom.OverlapError
	require.True(t, errors.As(err, &oe))
	require.Len(t, oe.Overlaps, 1)
	assert.Equal(t, 2, oe.Overlaps[0].Wire)
}

func TestDecodeTruncated(t *testing.T) {
	body := encodeBody(t, sampleCircuit())
	for _, cut := range []int{0, 10, 40, len(body) / 2, len(body) - 1} {
		_, err := decodeBody(body[:cut])
		assert.ErrorIs(t, err, wire.ErrTruncated, "cut at %d", cut)
	}
}

func TestEncodeChecksPresence(t *testing.T) {
	for _, comp := range []Component{
		{Kind: KindCustom},
		{Kind: KindNand, Custom: &CustomData{}},
		{Kind: KindProgram},
		{Kind: KindNot, Assembler: &AssemblerInfo{}},
	} {
		s := sampleCircuit()
		s.Components = wire.Own(comp)
		err := s.Encode(wire.NewWriter(64))
		assert.ErrorIs(t, err, wire.ErrInvariant, "%s", comp.Kind)
	}

	s := sampleCircuit()
	s.Components = wire.Own(Component{Kind: Kind(0xffff)})
	assert.ErrorIs(t, s.Encode(wire.NewWriter(64)), wire.ErrUnrecognized)
}
