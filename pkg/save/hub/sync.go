// Package hub holds the level-hub metadata shared by the v6 and later
// save layouts.
package hub

import (
	"fmt"

	"github.com/rawbytedev/tcsave/pkg/wire"
)

// SyncState tracks whether a circuit matches its copy on the hub.
type SyncState uint8

const (
	Unsynced SyncState = iota
	Synced
	ChangedAfterSync
)

func (s SyncState) String() string {
	switch s {
	case Unsynced:
		return "Unsynced"
	case Synced:
		return "Synced"
	case ChangedAfterSync:
		return "ChangedAfterSync"
	}
	return fmt.Sprintf("SyncState(%d)", uint8(s))
}

func (s SyncState) Known() bool { return s <= ChangedAfterSync }

// DecodeSyncState reads the one-byte sync state.
func DecodeSyncState(c *wire.Cursor) (SyncState, error) {
	at := c.Offset()
	v, err := c.U8()
	if err != nil {
		return 0, err
	}
	s := SyncState(v)
	if !s.Known() {
		return 0, wire.Errorf(wire.ErrUnrecognized, at, "sync state", "code %d", v)
	}
	return s, nil
}

func (s SyncState) Encode(w *wire.Writer) error {
	if !s.Known() {
		return fmt.Errorf("%w: sync state %d", wire.ErrUnrecognized, uint8(s))
	}
	w.U8(uint8(s))
	return nil
}
