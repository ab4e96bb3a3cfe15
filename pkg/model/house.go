package model

import "strings"

// House is a named, ordered collection of rooms. It mirrors Room's
// contract one level up: the same bounds-checked accessors, the same
// ordering and duplicate-name rules.
type House struct {
	name  string
	rooms []*Room
}

// NewHouse creates a house with the given name and initial rooms.
func NewHouse(name string, rooms ...*Room) *House {
	h := &House{name: name}
	h.rooms = append(h.rooms, rooms...)
	return h
}

// Name returns the house name.
func (h *House) Name() string {
	return h.name
}

// Len returns the number of rooms in the house.
func (h *House) Len() int {
	return len(h.rooms)
}

// Rooms returns the rooms in insertion order.
// The returned slice is a copy; mutating it does not affect the house.
func (h *House) Rooms() []*Room {
	result := make([]*Room, len(h.rooms))
	copy(result, h.rooms)
	return result
}

// Room returns the room at the given index.
func (h *House) Room(i int) (*Room, error) {
	if err := checkIndex(ResourceRoom, i, len(h.rooms)); err != nil {
		return nil, err
	}
	return h.rooms[i], nil
}

// AddRoom appends a room to the end of the house. It always succeeds.
func (h *House) AddRoom(r *Room) {
	h.rooms = append(h.rooms, r)
}

// RemoveRoom removes and returns the room at the given index.
// The order of the remaining rooms is preserved.
func (h *House) RemoveRoom(i int) (*Room, error) {
	if err := checkIndex(ResourceRoom, i, len(h.rooms)); err != nil {
		return nil, err
	}
	r := h.rooms[i]
	h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
	return r, nil
}

// Device returns the device at deviceIdx inside the room at roomIdx.
func (h *House) Device(roomIdx, deviceIdx int) (Device, error) {
	room, err := h.Room(roomIdx)
	if err != nil {
		return Device{}, err
	}
	return room.Device(deviceIdx)
}

// Report returns the house name header followed by each room's report in
// insertion order, with a blank line after every room. It only reads
// already-valid in-memory state and cannot fail.
func (h *House) Report() string {
	var b strings.Builder
	b.WriteString("=== Smart House: ")
	b.WriteString(h.name)
	b.WriteString(" ===\n")
	for _, r := range h.rooms {
		b.WriteString(r.Report())
		b.WriteByte('\n')
	}
	return b.String()
}
