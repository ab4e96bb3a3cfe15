package model

import (
	"errors"
	"strings"
	"testing"
)

func testHouse() *House {
	return NewHouse("H",
		NewRoom("Living Room", SocketDevice(NewSocket("Lamp", true, 60))),
		NewRoom("Bedroom", ThermometerDevice(NewThermometer("T1", 21))),
	)
}

func TestHouseBasics(t *testing.T) {
	house := testHouse()

	t.Run("Name", func(t *testing.T) {
		if house.Name() != "H" {
			t.Errorf("Name() = %q, want %q", house.Name(), "H")
		}
	})

	t.Run("Len", func(t *testing.T) {
		if house.Len() != 2 {
			t.Errorf("Len() = %d, want 2", house.Len())
		}
	})

	t.Run("RoomsPreserveInsertionOrder", func(t *testing.T) {
		names := []string{"Living Room", "Bedroom"}
		for i, r := range house.Rooms() {
			if r.Name() != names[i] {
				t.Errorf("Rooms()[%d].Name() = %q, want %q", i, r.Name(), names[i])
			}
		}
	})

	t.Run("RoomsReturnsCopy", func(t *testing.T) {
		rooms := house.Rooms()
		rooms[0] = NewRoom("Intruder")
		r, err := house.Room(0)
		if err != nil {
			t.Fatalf("Room(0) error = %v", err)
		}
		if r.Name() != "Living Room" {
			t.Errorf("house mutated through Rooms() copy: Room(0) = %q", r.Name())
		}
	})
}

func TestHouseRoomAccess(t *testing.T) {
	house := testHouse()

	t.Run("InRange", func(t *testing.T) {
		for i := 0; i < house.Len(); i++ {
			if _, err := house.Room(i); err != nil {
				t.Errorf("Room(%d) error = %v", i, err)
			}
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, i := range []int{-1, 2, 42} {
			_, err := house.Room(i)
			var ae *AccessError
			if !errors.As(err, &ae) {
				t.Fatalf("Room(%d) error = %v, want *AccessError", i, err)
			}
			if ae.Resource != ResourceRoom || ae.Index != i || ae.Len != 2 {
				t.Errorf("Room(%d) error = %+v, want {room %d 2}", i, ae, i)
			}
		}
	})

	t.Run("AddThenAccessLast", func(t *testing.T) {
		h := testHouse()
		added := NewRoom("Kitchen")
		h.AddRoom(added)
		got, err := h.Room(h.Len() - 1)
		if err != nil {
			t.Fatalf("Room(len-1) error = %v", err)
		}
		if got != added {
			t.Errorf("Room(len-1) = %v, want the just-added room", got)
		}
	})

	t.Run("RemovePreservesOrder", func(t *testing.T) {
		h := NewHouse("H", NewRoom("A"), NewRoom("B"), NewRoom("C"))
		removed, err := h.RemoveRoom(0)
		if err != nil {
			t.Fatalf("RemoveRoom(0) error = %v", err)
		}
		if removed.Name() != "A" {
			t.Errorf("removed = %q, want %q", removed.Name(), "A")
		}
		r, err := h.Room(0)
		if err != nil {
			t.Fatalf("Room(0) error = %v", err)
		}
		if r.Name() != "B" {
			t.Errorf("Room(0) = %q after removal, want %q", r.Name(), "B")
		}
	})

	t.Run("NestedDeviceAccess", func(t *testing.T) {
		d, err := house.Device(0, 0)
		if err != nil {
			t.Fatalf("Device(0, 0) error = %v", err)
		}
		if d.Name() != "Lamp" {
			t.Errorf("Device(0, 0) = %q, want %q", d.Name(), "Lamp")
		}

		_, err = house.Device(5, 0)
		var ae *AccessError
		if !errors.As(err, &ae) || ae.Resource != ResourceRoom {
			t.Errorf("Device(5, 0) error = %v, want room *AccessError", err)
		}

		_, err = house.Device(0, 5)
		if !errors.As(err, &ae) || ae.Resource != ResourceDevice {
			t.Errorf("Device(0, 5) error = %v, want device *AccessError", err)
		}
	})
}

func TestHouseReport(t *testing.T) {
	t.Run("EndToEndScenario", func(t *testing.T) {
		house := testHouse()
		report := house.Report()

		want := "=== Smart House: H ===\n" +
			"=== Room: Living Room ===\n" +
			"Device: Lamp, Status: ON, Power consumption: 60W\n" +
			"\n" +
			"=== Room: Bedroom ===\n" +
			"Device: T1, Temperature: 21°C\n" +
			"\n"
		if report != want {
			t.Errorf("Report() = %q, want %q", report, want)
		}

		// Required content, in order.
		order := []string{
			"Living Room",
			"Status: ON, Power consumption: 60W",
			"Bedroom",
			"Temperature: 21°C",
		}
		pos := 0
		for _, s := range order {
			idx := strings.Index(report[pos:], s)
			if idx < 0 {
				t.Fatalf("Report() missing %q after offset %d", s, pos)
			}
			pos += idx + len(s)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		house := testHouse()
		if house.Report() != house.Report() {
			t.Error("Report() not byte-identical across calls on unmodified house")
		}
	})

	t.Run("EmptyHouse", func(t *testing.T) {
		house := NewHouse("Empty")

		_, err := house.Room(0)
		var ae *AccessError
		if !errors.As(err, &ae) {
			t.Fatalf("Room(0) error = %v, want *AccessError", err)
		}
		if ae.Index != 0 || ae.Len != 0 {
			t.Errorf("error = %+v, want Index 0 Len 0", ae)
		}

		want := "=== Smart House: Empty ===\n"
		if got := house.Report(); got != want {
			t.Errorf("Report() = %q, want %q", got, want)
		}
	})
}
