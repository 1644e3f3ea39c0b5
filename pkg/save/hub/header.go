package hub

import (
	"fmt"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

const textPrefix = wire.PrefixU16

// Header is the circuit preamble of v7 and later saves: every field
// before the component list.
type Header struct {
	CustomID       int64
	HubID          uint32
	Gate           int64
	Delay          int64
	MenuVisible    bool
	ClockSpeed     uint64
	Dependencies   wire.Sequence[int64]
	Description    string
	Camera         geom.Point
	Sync           SyncState
	PlayerData     wire.Sequence[uint8]
	HubDescription string
}

func DecodeHeader(c *wire.Cursor) (Header, error) {
	var (
		h   Header
		err error
	)
	if h.CustomID, err = c.I64(); err != nil {
		return h, fmt.Errorf("custom id: %w", err)
	}
	if h.HubID, err = c.U32(); err != nil {
		return h, fmt.Errorf("hub id: %w", err)
	}
	if h.Gate, err = c.I64(); err != nil {
		return h, fmt.Errorf("gate: %w", err)
	}
	if h.Delay, err = c.I64(); err != nil {
		return h, fmt.Errorf("delay: %w", err)
	}
	if h.MenuVisible, err = c.Bool(); err != nil {
		return h, fmt.Errorf("menu visible: %w", err)
	}
	if h.ClockSpeed, err = c.U64(); err != nil {
		return h, fmt.Errorf("clock speed: %w", err)
	}
	if h.Dependencies, err = wire.DecodeWithPrefix(c, wire.PrefixU16, wire.Codec[int64](wire.Int64Codec{})); err != nil {
		return h, fmt.Errorf("dependencies: %w", err)
	}
	if h.Description, err = c.Text(textPrefix); err != nil {
		return h, fmt.Errorf("description: %w", err)
	}
	if h.Camera, err = (geom.PointCodec{}).Decode(c); err != nil {
		return h, fmt.Errorf("camera: %w", err)
	}
	if h.Sync, err = DecodeSyncState(c); err != nil {
		return h, err
	}
	if _, err = c.U16(); err != nil {
		return h, fmt.Errorf("reserved: %w", err)
	}
	if h.PlayerData, err = wire.DecodeWithPrefix(c, wire.PrefixU16, wire.Codec[uint8](wire.Uint8Codec{})); err != nil {
		return h, fmt.Errorf("player data: %w", err)
	}
	if h.HubDescription, err = c.Text(textPrefix); err != nil {
		return h, fmt.Errorf("hub description: %w", err)
	}
	return h, nil
}

// Encode writes h with the reserved u16 zeroed.
func (h *Header) Encode(w *wire.Writer) error {
	w.I64(h.CustomID)
	w.U32(h.HubID)
	w.I64(h.Gate)
	w.I64(h.Delay)
	w.Bool(h.MenuVisible)
	w.U64(h.ClockSpeed)
	if err := wire.EncodeWithPrefix(w, wire.PrefixU16, h.Dependencies, wire.Codec[int64](wire.Int64Codec{})); err != nil {
		return fmt.Errorf("dependencies: %w", err)
	}
	if err := w.Text(textPrefix, h.Description); err != nil {
		return fmt.Errorf("description: %w", err)
	}
	if err := (geom.PointCodec{}).Encode(w, h.Camera); err != nil {
		return err
	}
	if err := h.Sync.Encode(w); err != nil {
		return err
	}
	w.U16(0)
	if err := wire.EncodeWithPrefix(w, wire.PrefixU16, h.PlayerData, wire.Codec[uint8](wire.Uint8Codec{})); err != nil {
		return fmt.Errorf("player data: %w", err)
	}
	if err := w.Text(textPrefix, h.HubDescription); err != nil {
		return fmt.Errorf("hub description: %w", err)
	}
	return nil
}
