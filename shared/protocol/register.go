package protocol

import (
	"github.com/automoto/kiclash/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition uint = 10
	SyncIDNetFighter  uint = 11
	SyncIDNetMatch    uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and spectators before any network operations.
func RegisterComponents() error {
	// Fighters glide, so spectators interpolate positions
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	// Fighter and match state are discrete
	if err := esync.RegisterComponent(
		SyncIDNetFighter,
		netcomponents.NetFighterData{},
		netcomponents.NetFighter,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetMatch,
		netcomponents.NetMatchData{},
		netcomponents.NetMatch,
	); err != nil {
		return err
	}

	return nil
}
