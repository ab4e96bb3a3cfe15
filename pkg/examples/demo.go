// Package examples provides canned house models demonstrating how to
// build a House > Room > Device tree with the model package.
package examples

import (
	"github.com/smarthome-project/smarthome-go/pkg/model"
)

// NewDemoHouse builds a small demo house: a living room with a lamp socket,
// a bedroom with a thermometer, and a kitchen mixing both device kinds.
func NewDemoHouse() *model.House {
	return model.NewHouse("Demo Home",
		model.NewRoom("Living Room",
			model.SocketDevice(model.NewSocket("Lamp", true, 60)),
		),
		model.NewRoom("Bedroom",
			model.ThermometerDevice(model.NewThermometer("T1", 21)),
		),
		model.NewRoom("Kitchen",
			model.SocketDevice(model.NewSocket("Kettle", false, 2000)),
			model.SocketDevice(model.NewSocket("Fridge", true, 150)),
			model.ThermometerDevice(model.NewThermometer("Kitchen Sensor", 23.5)),
		),
	)
}
