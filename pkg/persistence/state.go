package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smarthome-project/smarthome-go/pkg/model"
)

// StateVersion is the current version of the snapshot format.
const StateVersion = 1

// HouseState is a serializable snapshot of a house.
type HouseState struct {
	// Version is the snapshot format version.
	Version int `json:"version" cbor:"1,keyasint"`

	// SnapshotID uniquely identifies this snapshot.
	SnapshotID string `json:"snapshot_id" cbor:"2,keyasint"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `json:"saved_at" cbor:"3,keyasint"`

	// Name is the house name.
	Name string `json:"name" cbor:"4,keyasint"`

	// Rooms in insertion order.
	Rooms []RoomState `json:"rooms,omitempty" cbor:"5,keyasint,omitempty"`
}

// RoomState is a serializable snapshot of a room.
type RoomState struct {
	// Name is the room name.
	Name string `json:"name" cbor:"1,keyasint"`

	// Devices in insertion order.
	Devices []DeviceState `json:"devices,omitempty" cbor:"2,keyasint,omitempty"`
}

// DeviceState is a serializable snapshot of a device.
// Kind decides which of the remaining fields are meaningful.
type DeviceState struct {
	// Kind is the device kind name ("socket" or "thermometer").
	Kind string `json:"kind" cbor:"1,keyasint"`

	// Name is the device name.
	Name string `json:"name" cbor:"2,keyasint"`

	// On is the socket on/off state.
	On bool `json:"on,omitempty" cbor:"3,keyasint,omitempty"`

	// PowerConsumption is the socket power draw in watts.
	PowerConsumption float64 `json:"power_consumption,omitempty" cbor:"4,keyasint,omitempty"`

	// Temperature is the thermometer reading in degrees Celsius.
	Temperature float64 `json:"temperature,omitempty" cbor:"5,keyasint,omitempty"`
}

// Capture takes a snapshot of the house with a fresh snapshot ID.
func Capture(house *model.House) *HouseState {
	state := &HouseState{
		Version:    StateVersion,
		SnapshotID: uuid.NewString(),
		SavedAt:    time.Now().UTC(),
		Name:       house.Name(),
	}

	for _, room := range house.Rooms() {
		rs := RoomState{Name: room.Name()}
		for _, device := range room.Devices() {
			rs.Devices = append(rs.Devices, captureDevice(device))
		}
		state.Rooms = append(state.Rooms, rs)
	}

	return state
}

func captureDevice(device model.Device) DeviceState {
	ds := DeviceState{
		Kind: device.Kind().String(),
		Name: device.Name(),
	}
	switch device.Kind() {
	case model.KindSocket:
		ds.On, _ = device.IsOn()
		ds.PowerConsumption, _ = device.PowerConsumption()
	case model.KindThermometer:
		ds.Temperature, _ = device.Temperature()
	}
	return ds
}

// Restore rebuilds a house model from the snapshot.
// It fails on an unsupported version or an unknown device kind.
func (s *HouseState) Restore() (*model.House, error) {
	if s.Version > StateVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (newest supported: %d)", s.Version, StateVersion)
	}

	house := model.NewHouse(s.Name)
	for ri, rs := range s.Rooms {
		room := model.NewRoom(rs.Name)
		for di, ds := range rs.Devices {
			device, err := restoreDevice(ds)
			if err != nil {
				return nil, fmt.Errorf("room %d device %d: %w", ri, di, err)
			}
			room.AddDevice(device)
		}
		house.AddRoom(room)
	}
	return house, nil
}

func restoreDevice(ds DeviceState) (model.Device, error) {
	switch ds.Kind {
	case model.KindSocket.String():
		return model.SocketDevice(model.NewSocket(ds.Name, ds.On, ds.PowerConsumption)), nil
	case model.KindThermometer.String():
		return model.ThermometerDevice(model.NewThermometer(ds.Name, ds.Temperature)), nil
	default:
		return model.Device{}, fmt.Errorf("unknown device kind %q", ds.Kind)
	}
}

// StateStore manages persistence of house snapshots to a JSON file.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a new state store.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Save persists the snapshot to disk.
func (s *StateStore) Save(state *HouseState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads a snapshot from disk.
// Returns nil, nil if the file doesn't exist (no saved state).
func (s *StateStore) Load() (*HouseState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &HouseState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
