// Package model implements the smart-home data model.
//
// # Hierarchy
//
// The model uses a 3-level ownership tree:
//
//	House > Room > Device
//
// A House owns an ordered list of Rooms, and each Room owns an ordered list
// of Devices. Ownership is strictly tree-shaped: children never reference
// their parent, and no entity is shared between two parents.
//
// # Devices
//
// Device is a closed tagged union over the supported device kinds:
//
//	House ("Home")
//	├── Room ("Living Room")
//	│   ├── Socket ("Lamp", ON, 60 W)
//	│   └── Thermometer ("Wall Sensor", 22.5 °C)
//	└── Room ("Bedroom")
//	    └── Thermometer ("T1", 21 °C)
//
// Callers that dispatch on Device.Kind are expected to handle every kind;
// adding a new kind means updating every such switch.
//
// # Addressing
//
// Rooms and devices are addressed by position. Insertion order is preserved,
// duplicate names are allowed, and identity is the index, not the name.
// Every index-based accessor validates the index against the current length
// and returns *AccessError instead of panicking when it is out of range.
//
// # Concurrency
//
// The model performs no internal locking. All operations are bounded,
// synchronous, in-memory computations; callers that share a House across
// goroutines must serialize access themselves.
package model
