// Package inspect provides read-only inspection of a house model and
// human-readable formatting of the resulting structure.
package inspect

import (
	"github.com/smarthome-project/smarthome-go/pkg/model"
)

// Inspector provides structural snapshots of a house.
type Inspector struct {
	house *model.House
}

// NewInspector creates an Inspector for the given house.
func NewInspector(house *model.House) *Inspector {
	return &Inspector{house: house}
}

// House returns the underlying house model.
func (i *Inspector) House() *model.House {
	return i.house
}

// HouseTree represents the complete house structure for display.
type HouseTree struct {
	Name  string
	Rooms []RoomInfo
}

// RoomInfo represents room information for display.
type RoomInfo struct {
	Index   int
	Name    string
	Devices []DeviceInfo
}

// DeviceInfo represents device information for display.
// On and PowerConsumption are meaningful for sockets, Temperature for
// thermometers; Kind tells which fields apply.
type DeviceInfo struct {
	Index            int
	Name             string
	Kind             model.Kind
	On               bool
	PowerConsumption float64
	Temperature      float64
}

// InspectHouse returns a complete tree of the house structure.
func (i *Inspector) InspectHouse() *HouseTree {
	tree := &HouseTree{Name: i.house.Name()}
	for idx, room := range i.house.Rooms() {
		tree.Rooms = append(tree.Rooms, inspectRoom(idx, room))
	}
	return tree
}

// InspectRoom returns information about the room at the given index.
func (i *Inspector) InspectRoom(idx int) (*RoomInfo, error) {
	room, err := i.house.Room(idx)
	if err != nil {
		return nil, err
	}
	info := inspectRoom(idx, room)
	return &info, nil
}

// InspectDevice returns information about a single device.
func (i *Inspector) InspectDevice(roomIdx, deviceIdx int) (*DeviceInfo, error) {
	device, err := i.house.Device(roomIdx, deviceIdx)
	if err != nil {
		return nil, err
	}
	info := inspectDevice(deviceIdx, device)
	return &info, nil
}

func inspectRoom(idx int, room *model.Room) RoomInfo {
	info := RoomInfo{Index: idx, Name: room.Name()}
	for di, device := range room.Devices() {
		info.Devices = append(info.Devices, inspectDevice(di, device))
	}
	return info
}

func inspectDevice(idx int, device model.Device) DeviceInfo {
	info := DeviceInfo{
		Index: idx,
		Name:  device.Name(),
		Kind:  device.Kind(),
	}
	switch device.Kind() {
	case model.KindSocket:
		info.On, _ = device.IsOn()
		info.PowerConsumption, _ = device.PowerConsumption()
	case model.KindThermometer:
		info.Temperature, _ = device.Temperature()
	}
	return info
}
