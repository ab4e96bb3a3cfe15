package inspect

import (
	"fmt"
	"strings"

	"github.com/smarthome-project/smarthome-go/pkg/model"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowIndices includes positional indices alongside names.
	ShowIndices bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int
}

// NewFormatter creates a Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowIndices: true,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatHouse formats the full house tree.
func (f *Formatter) FormatHouse(tree *HouseTree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "House: %s\n", tree.Name)
	for _, room := range tree.Rooms {
		b.WriteString(f.FormatRoom(&room, 1))
	}
	return b.String()
}

// FormatRoom formats a room and its devices at the given depth.
func (f *Formatter) FormatRoom(info *RoomInfo, depth int) string {
	var b strings.Builder
	label := fmt.Sprintf("Room: %s", info.Name)
	if f.ShowIndices {
		label = fmt.Sprintf("[%d] %s", info.Index, label)
	}
	b.WriteString(f.Indent(depth, label))
	b.WriteByte('\n')
	for _, device := range info.Devices {
		b.WriteString(f.Indent(depth+1, f.FormatDevice(&device)))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatDevice formats a single device line.
func (f *Formatter) FormatDevice(info *DeviceInfo) string {
	var detail string
	switch info.Kind {
	case model.KindSocket:
		state := "OFF"
		if info.On {
			state = "ON"
		}
		detail = fmt.Sprintf("%s, %s", state, FormatPower(info.PowerConsumption))
	case model.KindThermometer:
		detail = FormatTemperature(info.Temperature)
	}
	line := fmt.Sprintf("%s (%s): %s", info.Name, info.Kind, detail)
	if f.ShowIndices {
		line = fmt.Sprintf("[%d] %s", info.Index, line)
	}
	return line
}

// FormatPower formats a power draw in watts, switching to kW when large.
func FormatPower(w float64) string {
	if w >= 1000 || w <= -1000 {
		return fmt.Sprintf("%.1f kW", w/1000.0)
	}
	return fmt.Sprintf("%.1f W", w)
}

// FormatTemperature formats a temperature reading in degrees Celsius.
func FormatTemperature(c float64) string {
	return fmt.Sprintf("%.1f °C", c)
}
