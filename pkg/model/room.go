package model

import "strings"

// Room is a named, ordered collection of devices.
// The room owns its devices exclusively; devices keep no back-reference.
type Room struct {
	name    string
	devices []Device
}

// NewRoom creates a room with the given name and initial devices.
// An empty room is valid.
func NewRoom(name string, devices ...Device) *Room {
	r := &Room{name: name}
	r.devices = append(r.devices, devices...)
	return r
}

// Name returns the room name.
func (r *Room) Name() string {
	return r.name
}

// Len returns the number of devices in the room.
func (r *Room) Len() int {
	return len(r.devices)
}

// Devices returns the devices in insertion order.
// The returned slice is a copy; mutating it does not affect the room.
func (r *Room) Devices() []Device {
	result := make([]Device, len(r.devices))
	copy(result, r.devices)
	return result
}

// Device returns the device at the given index.
func (r *Room) Device(i int) (Device, error) {
	if err := checkIndex(ResourceDevice, i, len(r.devices)); err != nil {
		return Device{}, err
	}
	return r.devices[i], nil
}

// AddDevice appends a device to the end of the room. It always succeeds.
func (r *Room) AddDevice(d Device) {
	r.devices = append(r.devices, d)
}

// RemoveDevice removes and returns the device at the given index.
// The order of the remaining devices is preserved.
func (r *Room) RemoveDevice(i int) (Device, error) {
	if err := checkIndex(ResourceDevice, i, len(r.devices)); err != nil {
		return Device{}, err
	}
	d := r.devices[i]
	r.devices = append(r.devices[:i], r.devices[i+1:]...)
	return d, nil
}

// TurnOnDevice switches on the device at the given index.
// Returns false (and no error) when the device has no power control.
func (r *Room) TurnOnDevice(i int) (bool, error) {
	d, err := r.Device(i)
	if err != nil {
		return false, err
	}
	return d.TurnOn(), nil
}

// TurnOffDevice switches off the device at the given index.
// Returns false (and no error) when the device has no power control.
func (r *Room) TurnOffDevice(i int) (bool, error) {
	d, err := r.Device(i)
	if err != nil {
		return false, err
	}
	return d.TurnOff(), nil
}

// Report returns the room name header followed by one status line per
// device, in insertion order. An empty room produces just the header.
func (r *Room) Report() string {
	var b strings.Builder
	b.WriteString("=== Room: ")
	b.WriteString(r.name)
	b.WriteString(" ===\n")
	for _, d := range r.devices {
		b.WriteString(d.Status())
		b.WriteByte('\n')
	}
	return b.String()
}
