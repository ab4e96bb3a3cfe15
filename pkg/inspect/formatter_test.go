package inspect

import (
	"strings"
	"testing"

	"github.com/smarthome-project/smarthome-go/pkg/model"
)

func TestFormatDevice(t *testing.T) {
	f := NewFormatter()

	t.Run("Socket", func(t *testing.T) {
		got := f.FormatDevice(&DeviceInfo{
			Index: 0, Name: "Lamp", Kind: model.KindSocket,
			On: true, PowerConsumption: 60,
		})
		want := "[0] Lamp (socket): ON, 60.0 W"
		if got != want {
			t.Errorf("FormatDevice() = %q, want %q", got, want)
		}
	})

	t.Run("SocketOff", func(t *testing.T) {
		got := f.FormatDevice(&DeviceInfo{
			Index: 2, Name: "Heater", Kind: model.KindSocket,
			On: false, PowerConsumption: 1500,
		})
		want := "[2] Heater (socket): OFF, 1.5 kW"
		if got != want {
			t.Errorf("FormatDevice() = %q, want %q", got, want)
		}
	})

	t.Run("Thermometer", func(t *testing.T) {
		got := f.FormatDevice(&DeviceInfo{
			Index: 1, Name: "T1", Kind: model.KindThermometer,
			Temperature: 21.5,
		})
		want := "[1] T1 (thermometer): 21.5 °C"
		if got != want {
			t.Errorf("FormatDevice() = %q, want %q", got, want)
		}
	})

	t.Run("WithoutIndices", func(t *testing.T) {
		plain := &Formatter{ShowIndices: false, IndentWidth: 2}
		got := plain.FormatDevice(&DeviceInfo{
			Name: "T1", Kind: model.KindThermometer, Temperature: 20,
		})
		if strings.HasPrefix(got, "[") {
			t.Errorf("FormatDevice() = %q, want no index prefix", got)
		}
	})
}

func TestFormatHouse(t *testing.T) {
	tree := testInspector().InspectHouse()
	out := NewFormatter().FormatHouse(tree)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"House: H",
		"  [0] Room: Living Room",
		"    [0] Lamp (socket): ON, 60.0 W",
		"    [1] T1 (thermometer): 21.5 °C",
		"  [1] Room: Closet",
	}
	if len(lines) != len(want) {
		t.Fatalf("FormatHouse() produced %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestFormatPower(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0 W"},
		{60, "60.0 W"},
		{999.9, "999.9 W"},
		{1000, "1.0 kW"},
		{2300, "2.3 kW"},
		{-1500, "-1.5 kW"},
	}
	for _, tc := range cases {
		if got := FormatPower(tc.in); got != tc.want {
			t.Errorf("FormatPower(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIndent(t *testing.T) {
	f := &Formatter{IndentWidth: 4}
	if got := f.Indent(2, "x"); got != "        x" {
		t.Errorf("Indent(2, x) = %q", got)
	}
	// Zero width falls back to the default of 2.
	zero := &Formatter{}
	if got := zero.Indent(1, "x"); got != "  x" {
		t.Errorf("Indent(1, x) = %q", got)
	}
}
