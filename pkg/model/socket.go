package model

import (
	"fmt"
	"strconv"
)

// Socket is a switchable power socket device.
type Socket struct {
	name             string
	on               bool
	powerConsumption float64
}

// NewSocket creates a socket with the given name, initial on/off state,
// and rated power draw in watts.
func NewSocket(name string, on bool, powerConsumption float64) *Socket {
	return &Socket{name: name, on: on, powerConsumption: powerConsumption}
}

// Name returns the display name.
func (s *Socket) Name() string {
	return s.name
}

// IsOn reports whether the socket is switched on.
func (s *Socket) IsOn() bool {
	return s.on
}

// TurnOn switches the socket on. Turning on an already-on socket is a no-op.
func (s *Socket) TurnOn() {
	s.on = true
}

// TurnOff switches the socket off. Turning off an already-off socket is a no-op.
func (s *Socket) TurnOff() {
	s.on = false
}

// PowerConsumption returns the stored power draw in watts.
// The value is returned unchanged regardless of the on/off state; callers
// interpret what a draw means for a socket that is off.
func (s *Socket) PowerConsumption() float64 {
	return s.powerConsumption
}

// Status returns a one-line summary of the socket state.
func (s *Socket) Status() string {
	state := "OFF"
	if s.on {
		state = "ON"
	}
	return fmt.Sprintf("Device: %s, Status: %s, Power consumption: %sW",
		s.name, state, formatFloat(s.powerConsumption))
}

// formatFloat renders a float without trailing zeros (60 -> "60", 21.5 -> "21.5").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
