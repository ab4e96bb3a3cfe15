package persistence

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// stateEncMode is the CBOR encoder mode for snapshots.
// Deterministic encoding so identical snapshots serialize identically.
var stateEncMode cbor.EncMode

// stateDecMode is the CBOR decoder mode for snapshots.
var stateDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	stateEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	stateDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeState encodes a snapshot to CBOR bytes using integer keys for
// compactness.
func EncodeState(state *HouseState) ([]byte, error) {
	return stateEncMode.Marshal(state)
}

// DecodeState decodes CBOR bytes into a snapshot.
func DecodeState(data []byte) (*HouseState, error) {
	state := &HouseState{}
	if err := stateDecMode.Unmarshal(data, state); err != nil {
		return nil, err
	}
	return state, nil
}
