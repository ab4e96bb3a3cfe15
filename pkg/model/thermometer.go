package model

import "fmt"

// Thermometer is a temperature sensor device.
// It stores the last known reading; the model does not range-check values.
type Thermometer struct {
	name        string
	temperature float64
}

// NewThermometer creates a thermometer with the given name and initial reading.
func NewThermometer(name string, temperature float64) *Thermometer {
	return &Thermometer{name: name, temperature: temperature}
}

// Name returns the display name.
func (t *Thermometer) Name() string {
	return t.name
}

// Temperature returns the last known reading in degrees Celsius.
func (t *Thermometer) Temperature() float64 {
	return t.temperature
}

// SetTemperature overwrites the stored reading. Any value is accepted,
// including physically implausible ones.
func (t *Thermometer) SetTemperature(value float64) {
	t.temperature = value
}

// Status returns a one-line summary of the current reading.
func (t *Thermometer) Status() string {
	return fmt.Sprintf("Device: %s, Temperature: %s°C", t.name, formatFloat(t.temperature))
}
