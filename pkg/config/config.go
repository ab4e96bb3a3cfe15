// Package config loads house layouts from YAML.
//
// A layout file describes the full House > Room > Device tree:
//
//	house: Home
//	rooms:
//	  - name: Living Room
//	    devices:
//	      - kind: socket
//	        name: Lamp
//	        power_on: true
//	        power: 60
//	      - kind: thermometer
//	        name: T1
//	        temperature: 21
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smarthome-project/smarthome-go/pkg/model"
)

// Layout describes a house layout loaded from YAML.
type Layout struct {
	House string       `yaml:"house"`
	Rooms []RoomLayout `yaml:"rooms"`
}

// RoomLayout describes a single room and its devices.
type RoomLayout struct {
	Name    string         `yaml:"name"`
	Devices []DeviceLayout `yaml:"devices"`
}

// DeviceLayout describes a single device.
// Kind selects the variant; PowerOn and Power apply to sockets,
// Temperature to thermometers.
type DeviceLayout struct {
	Kind        string  `yaml:"kind"`
	Name        string  `yaml:"name"`
	PowerOn     bool    `yaml:"power_on"`
	Power       float64 `yaml:"power"`
	Temperature float64 `yaml:"temperature"`
}

// Parse parses and validates a YAML house layout.
func Parse(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// LoadFile reads and parses a YAML house layout from disk.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	layout, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

func (l *Layout) validate() error {
	if l.House == "" {
		return fmt.Errorf("house name is required")
	}
	for ri, room := range l.Rooms {
		if room.Name == "" {
			return fmt.Errorf("rooms[%d]: name is required", ri)
		}
		for di, device := range room.Devices {
			if err := device.validate(); err != nil {
				return fmt.Errorf("rooms[%d].devices[%d]: %w", ri, di, err)
			}
		}
	}
	return nil
}

func (d *DeviceLayout) validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch d.Kind {
	case model.KindSocket.String():
		if d.Power < 0 {
			return fmt.Errorf("power must be >= 0, got %v", d.Power)
		}
	case model.KindThermometer.String():
		// Any temperature is accepted, matching the model.
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", d.Kind)
	}
	return nil
}

// Build constructs the house model described by the layout.
// The layout must have been validated (Parse does this).
func (l *Layout) Build() *model.House {
	house := model.NewHouse(l.House)
	for _, room := range l.Rooms {
		r := model.NewRoom(room.Name)
		for _, device := range room.Devices {
			switch device.Kind {
			case model.KindSocket.String():
				r.AddDevice(model.SocketDevice(model.NewSocket(device.Name, device.PowerOn, device.Power)))
			case model.KindThermometer.String():
				r.AddDevice(model.ThermometerDevice(model.NewThermometer(device.Name, device.Temperature)))
			}
		}
		house.AddRoom(r)
	}
	return house
}
