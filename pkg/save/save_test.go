package save

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/save/hub"
	"github.com/rawbytedev/tcsave/pkg/save/legacy"
	"github.com/rawbytedev/tcsave/pkg/save/v10"
	"github.com/rawbytedev/tcsave/pkg/save/v6"
	"github.com/rawbytedev/tcsave/pkg/save/v7"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

func legacyBinary() *legacy.Save {
	name := "main"
	return &legacy.Save{
		Format:       legacy.FormatBinary,
		Version:      3,
		Nand:         40,
		Delay:        8,
		MenuVisible:  true,
		ClockSpeed:   legacy.DefaultClockSpeed,
		NestingLevel: 1,
		Dependencies: wire.Own[int64](1),
		Description:  "xor",
		Components: wire.Own(
			legacy.Component{Kind: "Nand", PermanentID: 1},
			legacy.Component{Kind: "Program1", PermanentID: 2, ProgramName: &name},
		),
		Circuits: wire.Own(legacy.Circuit{
			PermanentID: 9,
			Kind:        legacy.CircuitByte,
			Path:        wire.Own(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}),
		}),
	}
}

func v6Circuit() *v6.Circuit {
	return &v6.Circuit{
		Description: "v6",
		Components:  wire.Own(v6.Component{Kind: v6.KindNot, PermanentID: 1}),
		Wires: wire.Own(v6.Wire{Width: 1, Path: geom.NewRoute(
			geom.Segment{Length: 2, Direction: geom.Right},
		)}),
	}
}

func v7Circuit() *v7.Circuit {
	return &v7.Circuit{
		Header:     hub.Header{Description: "v7", Sync: hub.Synced},
		Components: wire.Own(v7.Component{Kind: v7.KindOn, PermanentID: 4}),
	}
}

func v10Circuit(version uint8) *v10.Circuit {
	return &v10.Circuit{
		Version:    version,
		Header:     hub.Header{Description: "v10", ClockSpeed: 9},
		Components: wire.Own(v10.Component{Kind: v10.KindOff, PermanentID: 5}),
		Wires: wire.Own(v10.Wire{Path: geom.TeleportTo(geom.Point{X: 4, Y: 4})}),
	}
}

func TestDecodeLegacyText(t *testing.T) {
	rec, err := Decode([]byte("1|A`0`0`0`1`x|1`0`10`comment`0,0,5,0|10,2|"))
	require.NoError(t, err)
	s, ok := rec.(*legacy.Save)
	require.True(t, ok)
	assert.Equal(t, TagLegacyText, s.Tag())
	assert.Equal(t, 1, s.Components.Len())
	assert.Equal(t, 1, s.Circuits.Len())
	assert.Equal(t, uint32(10), s.Nand)
}

func TestRoundTripEveryLayout(t *testing.T) {
	for _, tc := range []struct {
		name string
		rec  Record
		tag  byte
	}{
		{"legacy binary", legacyBinary(), TagLegacyBinary},
		{"v6", v6Circuit(), TagV6},
		{"v7", v7Circuit(), TagV7},
		{"v8", v10Circuit(TagV8), TagV8},
		{"v9", v10Circuit(TagV9), TagV9},
		{"v10", v10Circuit(0), TagV10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Encode(tc.rec)
			require.NoError(t, err)
			require.Equal(t, tc.tag, data[0])

			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tc.tag, got.Tag())

			again, err := Encode(got)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestDecodeKeepsV10Version(t *testing.T) {
	data, err := Encode(v10Circuit(TagV9))
	require.NoError(t, err)
	rec, err := Decode(data)
	require.NoError(t, err)
	c, ok := rec.(*v10.Circuit)
	require.True(t, ok)
	assert.Equal(t, uint8(TagV9), c.Version)
	assert.Equal(t, "v10", c.Description)
}

func TestDecodeRejects(t *testing.T) {
	v6Body := func(extra ...byte) []byte {
		w := wire.NewWriter(64)
		require.NoError(t, v6Circuit().Encode(w))
		return append([]byte{TagV6}, s2.EncodeSnappy(nil, append(w.Bytes(), extra...))...)
	}
	legacyTrailing, err := Encode(legacyBinary())
	require.NoError(t, err)
	legacyTrailing = append(legacyTrailing, 0)

	for _, tc := range []struct {
		name string
		in   []byte
		err  error
	}{
		{"empty", nil, wire.ErrTruncated},
		{"unknown tag", []byte{5, 0, 0}, wire.ErrUnrecognized},
		{"text tag as byte 1", []byte{1}, wire.ErrUnrecognized},
		{"garbage body", []byte{TagV7, 0xff, 0xff, 0xff, 0xff, 0xff}, wire.ErrCompression},
		{"empty compressed body", []byte{TagV10}, wire.ErrCompression},
		{"declared size of 4 GiB", []byte{TagV10, 0xf0, 0xff, 0xff, 0xff, 0x0f, 0x00, 'x'}, wire.ErrCompression},
		{"declared size beyond expansion", []byte{TagV6, 0xe8, 0x07, 0x00, 'x'}, wire.ErrCompression},
		{"v6 trailing bytes", v6Body(1, 2), wire.ErrMalformed},
		{"legacy trailing bytes", legacyTrailing, wire.ErrMalformed},
		{"legacy text bad utf8", []byte{'1', '|', 0xff, '|', '|'}, wire.ErrMalformed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.in)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeHonorsMaxBodySize(t *testing.T) {
	data, err := Encode(v7Circuit())
	require.NoError(t, err)

	_, err = New(Options{MaxBodySize: 8}).Decode(data)
	require.ErrorIs(t, err, wire.ErrCompression)
	var we *wire.Error
	require.True(t, errors.As(err, &we))
	assert.Equal(t, 1, we.Offset)

	_, err = New(Options{MaxBodySize: 1 << 10}).Decode(data)
	require.NoError(t, err)
}

func TestEncodeRejects(t *testing.T) {
	text, err := Decode([]byte("1|||"))
	require.NoError(t, err)
	_, err = Encode(text)
	assert.ErrorIs(t, err, wire.ErrUnsupported)

	_, err = Encode(v10Circuit(TagV7))
	assert.ErrorIs(t, err, wire.ErrUnrecognized)
}

func TestCodecLogsOverlaps(t *testing.T) {
	c := v6Circuit()
	first, err := c.Wires.Collect()
	require.NoError(t, err)
	c.Wires.Append(first[0])
	data, err := Encode(c)
	require.NoError(t, err)

	var logs bytes.Buffer
	codec := New(Options{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))})
	_, err = codec.Decode(data)
	require.ErrorIs(t, err, wire.ErrInvariant)
	var oe *geom.OverlapError
	assert.True(t, errors.As(err, &oe))
	assert.Contains(t, logs.String(), "decompressed save body")
	assert.Contains(t, logs.String(), "wire overlaps an earlier wire")
}

func TestUnsafeStringsAliasInput(t *testing.T) {
	data, err := Encode(legacyBinary())
	require.NoError(t, err)

	rec, err := New(Options{UnsafeStrings: true}).Decode(data)
	require.NoError(t, err)
	s := rec.(*legacy.Save)
	require.Equal(t, "xor", s.Description)

	at := bytes.Index(data, []byte("xor"))
	require.Positive(t, at)
	data[at] = 'n'
	assert.Equal(t, "nor", s.Description)
}

func FuzzDecode(f *testing.F) {
	for _, rec := range []Record{legacyBinary(), v6Circuit(), v7Circuit(), v10Circuit(0)} {
		data, err := Encode(rec)
		require.NoError(f, err)
		f.Add(data)
	}
	f.Add([]byte("1|A`0`0`0`1`x|1`0`10`comment`0,0,5,0|10,2|"))
	f.Fuzz(func(t *testing.T, data []byte) {
		rec, err := Decode(data)
		if err != nil {
			return
		}
		if s, ok := rec.(*legacy.Save); ok && s.Format == legacy.FormatText {
			return
		}
		_, _ = Encode(rec)
	})
}

func BenchmarkDecodeV10(b *testing.B) {
	c := v10Circuit(0)
	for i := 0; i < 500; i++ {
		c.Components.Append(v10.Component{Kind: v10.KindNandBit, PermanentID: uint64(i + 10), Position: geom.Point{X: int16(i), Y: 1}})
	}
	data, err := Encode(c)
	require.NoError(b, err)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
