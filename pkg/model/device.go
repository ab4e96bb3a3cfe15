package model

// Kind identifies a device variant.
type Kind uint8

// Device kinds. The set is closed: every switch over Kind in this module
// handles all of them, so adding a kind is a compile-visible change.
const (
	KindThermometer Kind = iota + 1
	KindSocket
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindThermometer:
		return "thermometer"
	case KindSocket:
		return "socket"
	}
	return "unknown"
}

// Device is a tagged union over the supported device variants.
// A Device wraps exactly one variant; the zero Device is invalid and must
// not be stored in a Room.
type Device struct {
	kind        Kind
	thermometer *Thermometer
	socket      *Socket
}

// ThermometerDevice wraps a thermometer as a Device.
func ThermometerDevice(t *Thermometer) Device {
	return Device{kind: KindThermometer, thermometer: t}
}

// SocketDevice wraps a socket as a Device.
func SocketDevice(s *Socket) Device {
	return Device{kind: KindSocket, socket: s}
}

// Kind returns the variant tag.
func (d Device) Kind() Kind {
	return d.kind
}

// Name returns the display name of the underlying device.
func (d Device) Name() string {
	switch d.kind {
	case KindThermometer:
		return d.thermometer.Name()
	case KindSocket:
		return d.socket.Name()
	}
	return ""
}

// Status returns the one-line state summary of the underlying device.
func (d Device) Status() string {
	switch d.kind {
	case KindThermometer:
		return d.thermometer.Status()
	case KindSocket:
		return d.socket.Status()
	}
	return ""
}

// Thermometer returns the underlying thermometer, if this device is one.
func (d Device) Thermometer() (*Thermometer, bool) {
	return d.thermometer, d.kind == KindThermometer
}

// Socket returns the underlying socket, if this device is one.
func (d Device) Socket() (*Socket, bool) {
	return d.socket, d.kind == KindSocket
}

// SupportsPowerControl reports whether the device can be switched on and off.
func (d Device) SupportsPowerControl() bool {
	switch d.kind {
	case KindSocket:
		return true
	case KindThermometer:
		return false
	}
	return false
}

// IsOn reports the on/off state. The second result is false for devices
// without power control.
func (d Device) IsOn() (on bool, ok bool) {
	switch d.kind {
	case KindSocket:
		return d.socket.IsOn(), true
	case KindThermometer:
		return false, false
	}
	return false, false
}

// TurnOn switches the device on. Returns false for devices without power
// control; the call is then a no-op.
func (d Device) TurnOn() bool {
	switch d.kind {
	case KindSocket:
		d.socket.TurnOn()
		return true
	case KindThermometer:
		return false
	}
	return false
}

// TurnOff switches the device off. Returns false for devices without power
// control; the call is then a no-op.
func (d Device) TurnOff() bool {
	switch d.kind {
	case KindSocket:
		d.socket.TurnOff()
		return true
	case KindThermometer:
		return false
	}
	return false
}

// Temperature returns the stored reading. The second result is false for
// devices that do not sense temperature.
func (d Device) Temperature() (float64, bool) {
	switch d.kind {
	case KindThermometer:
		return d.thermometer.Temperature(), true
	case KindSocket:
		return 0, false
	}
	return 0, false
}

// PowerConsumption returns the stored power draw. The second result is false
// for devices that do not draw power.
func (d Device) PowerConsumption() (float64, bool) {
	switch d.kind {
	case KindSocket:
		return d.socket.PowerConsumption(), true
	case KindThermometer:
		return 0, false
	}
	return 0, false
}
