package v10

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
		Header: hub.Header{
			CustomID:     5,
			Gate:         2,
			Delay:        2,
			MenuVisible:  true,
			ClockSpeed:   60,
			Dependencies: wire.Own[int64](),
			Description:  "registers",
			Sync:         hub.Unsynced,
		},
		Components: wire.Own(
			Component{Kind: KindNandBit, PermanentID: 1, Position: geom.Point{X: 3, Y: 3}},
			Component{
				Kind:        KindStaticIndexer,
				PermanentID: 2,
				WordSize:    8,
				Settings:    wire.Own[uint64](1, 2, 3),
				LinkedComponents: wire.Own(
					LinkedComponent{PermanentID: 1, InnerID: 4, Name: "ram", Offset: 16},
				),
				SelectedPrograms: wire.Own(Program{First: "rom", Second: "prog.asm"}),
			},
			Component{
				Kind:        KindCustom,
				PermanentID: 3,
				Custom: &CustomData{
					ID:           123,
					StaticStates: wire.Own(StaticState{First: 1, Second: -1}),
				},
			},
		),
		Wires: wire.Own(
			Wire{Color: 2, Start: geom.Point{X: 0, Y: 0}, Path: geom.NewRoute(
				geom.Segment{Length: 3, Direction: geom.Down},
				geom.Segment{Length: 3, Direction: geom.Right},
			)},
			Wire{Comment: "jump", Start: geom.Point{X: 0, Y: 0}, Path: geom.TeleportTo(geom.Point{X: 3, Y: 3})},
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
	assert.Equal(t, byte(Tag), got.Tag())
	assert.Equal(t, "registers", got.Description)

	comps, err := got.Components.Collect()
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, int64(8), comps[1].WordSize)
	linked, err := comps[1].LinkedComponents.Collect()
	require.NoError(t, err)
	assert.Equal(t, []LinkedComponent{{PermanentID: 1, InnerID: 4, Name: "ram", Offset: 16}}, linked)
	programs, err := comps[1].SelectedPrograms.Collect()
	require.NoError(t, err)
	assert.Equal(t, []Program{{First: "rom", Second: "prog.asm"}}, programs)
	require.NotNil(t, comps[2].Custom)
	states, err := comps[2].Custom.StaticStates.Collect()
	require.NoError(t, err)
	assert.Equal(t, []StaticState{{First: 1, Second: -1}}, states)

	again := encodeBody(t, got)
	assert.Equal(t, body, again)

	other, err := decodeBody(again)
	require.NoError(t, err)
	assert.Equal(t, got, other)
}

func TestTagFollowsVersion(t *testing.T) {
	s := sampleCircuit()
	assert.Equal(t, byte(Tag), s.Tag())
	s.Version = TagV8
	assert.Equal(t, byte(TagV8), s.Tag())
}

func TestDecodeUnknownKind(t *testing.T) {
	a := sampleCircuit()
	b := sampleCircuit()
	b.Components.Mutable()[0].Kind = KindAndBit
	body := encodeBody(t, a)
	at := firstDiff(t, body, encodeBody(t, b))

	binary.LittleEndian.PutUint16(body[at:], 0x1234)
	_, err := decodeBody(body)
	require.ErrorIs(t, err, wire.ErrUnrecognized)
	var we *wire.Error
	require.True(t, errors.As(err, &we))
	assert.Equal(t, at, we.Offset)
}

func TestDecodeStaticIndexerNeedsWordSize(t *testing.T) {
	a := sampleCircuit()
	b := sampleCircuit()
	b.Components.Mutable()[1].WordSize = 9
	body := encodeBody(t, a)
	at := firstDiff(t, body, encodeBody(t, b))

	binary.LittleEndian.PutUint64(body[at:], 0)
	_, err := decodeBody(body)
	require.ErrorIs(t, err, wire.ErrInvariant)
	assert.Contains(t, err.Error(), "component 1")
}

func TestDecodeMakerWordUnsupported(t *testing.T) {
	a := sampleCircuit()
	b := sampleCircuit()
	b.Components.Mutable()[0].Kind = KindAndBit
	body := encodeBody(t, a)
	at := firstDiff(t, body, encodeBody(t, b))

	binary.LittleEndian.PutUint16(body[at:], uint16(KindMakerWord2))
	_, err := decodeBody(body)
	require.ErrorIs(t, err, wire.ErrUnsupported)
}

func TestEncodeRejectsComponentRules(t *testing.T) {
	s := sampleCircuit()
	s.Components.Mutable()[1].WordSize = 0
	assert.ErrorIs(t, s.Encode(wire.NewWriter(64)), wire.ErrInvariant)

	s = sampleCircuit()
	s.Components = wire.Own(Component{Kind: KindMakerWord8})
	assert.ErrorIs(t, s.Encode(wire.NewWriter(64)), wire.ErrUnsupported)

	s = sampleCircuit()
	s.Components = wire.Own(Component{Kind: KindCustom})
	assert.ErrorIs(t, s.Encode(wire.NewWriter(64)), wire.ErrInvariant)
}

func TestDecodeOverlappingWires(t *testing.T) {
	s := sampleCircuit()
	s.Wires.Append(Wire{Start: geom.Point{X: 3, Y: 3}, Path: geom.NewRoute(
		geom.Segment{Length: 3, Direction: geom.Up},
		geom.Segment{Length: 3, Direction: geom.Left},
	)})

	_, err := decodeBody(encodeBody(t, s))
	require.ErrorIs(t, err, wire.ErrInvariant)
}

func TestDecodeUnknownSyncState(t *testing.T) {
	a := sampleCircuit()
	b := sampleCircuit()
	b.Sync = hub.Synced
	body := encodeBody(t, a)
	at := firstDiff(t, body, encodeBody(t, b))

	body[at] = 9
	_, err := decodeBody(body)
	require.ErrorIs(t, err, wire.ErrUnrecognized)
}

func TestDecodeTruncated(t *testing.T) {
	body := encodeBody(t, sampleCircuit())
	for _, cut := range []int{0, len(body) / 3, len(body) - 1} {
		_, err := decodeBody(body[:cut])
		assert.ErrorIs(t, err, wire.ErrTruncated, "cut at %d", cut)
	}
}
