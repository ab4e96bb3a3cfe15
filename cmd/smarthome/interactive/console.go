// Package interactive provides the interactive command-line interface
// for the smarthome tool.
package interactive

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/smarthome-project/smarthome-go/pkg/inspect"
	"github.com/smarthome-project/smarthome-go/pkg/model"
	"github.com/smarthome-project/smarthome-go/pkg/persistence"
)

// Console handles interactive mode for the smarthome tool.
type Console struct {
	house     *model.House
	store     *persistence.StateStore
	formatter *inspect.Formatter
	rl        *readline.Instance
}

// New creates a new interactive console over the given house.
// store may be nil; save and load are then unavailable.
func New(house *model.House, store *persistence.StateStore) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "home> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		house:     house,
		store:     store,
		formatter: inspect.NewFormatter(),
		rl:        rl,
	}, nil
}

// House returns the current house model. The model is replaced when a
// snapshot is loaded, so callers should re-read it after Run returns.
func (c *Console) House() *model.House {
	return c.house
}

// Run starts the interactive command loop. It returns when the user quits
// or input is exhausted.
func (c *Console) Run() {
	defer c.rl.Close()

	c.printHelp(c.rl.Stdout())

	for {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return
		}

		if c.execute(line, c.rl.Stdout()) {
			return
		}
	}
}

// execute runs a single command line against the house, writing output to w.
// It returns true when the console should exit.
func (c *Console) execute(line string, w io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp(w)

	case "report":
		fmt.Fprint(w, c.house.Report())

	case "inspect", "i":
		tree := inspect.NewInspector(c.house).InspectHouse()
		fmt.Fprint(w, c.formatter.FormatHouse(tree))

	case "rooms":
		c.cmdRooms(w)

	case "add-room":
		c.cmdAddRoom(w, args)

	case "add-socket":
		c.cmdAddSocket(w, args)

	case "add-thermo":
		c.cmdAddThermo(w, args)

	case "remove-room":
		c.cmdRemoveRoom(w, args)

	case "remove-device":
		c.cmdRemoveDevice(w, args)

	case "on":
		c.cmdSwitch(w, args, true)

	case "off":
		c.cmdSwitch(w, args, false)

	case "temp":
		c.cmdTemp(w, args)

	case "save":
		c.cmdSave(w)

	case "load":
		c.cmdLoad(w)

	case "export":
		c.cmdExport(w, args)

	case "quit", "exit", "q":
		fmt.Fprintln(w, "Exiting...")
		return true

	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return false
}

func (c *Console) printHelp(w io.Writer) {
	fmt.Fprintln(w, `
Smart Home Commands:
  Inspection:
    report                           - Full text report of the house
    inspect                          - Structured house tree with indices
    rooms                            - List rooms

  Editing:
    add-room <name>                  - Append a room
    add-socket <room> <watts> <name> - Append a socket to a room
    add-thermo <room> <temp> <name>  - Append a thermometer to a room
    remove-room <room>               - Remove a room by index
    remove-device <room> <device>    - Remove a device by index

  Control:
    on <room> <device>               - Turn a device on
    off <room> <device>              - Turn a device off
    temp <room> <device> <value>     - Set a thermometer reading

  Snapshots:
    save                             - Save the house to the state file
    load                             - Reload the house from the state file
    export <path>                    - Write a CBOR snapshot to a file

  General:
    help                             - Show this help
    quit                             - Exit

  Rooms and devices are addressed by zero-based index (see 'inspect').`)
}

func (c *Console) cmdRooms(w io.Writer) {
	rooms := c.house.Rooms()
	if len(rooms) == 0 {
		fmt.Fprintln(w, "No rooms.")
		return
	}
	for i, room := range rooms {
		fmt.Fprintf(w, "[%d] %s (%d devices)\n", i, room.Name(), room.Len())
	}
}

func (c *Console) cmdAddRoom(w io.Writer, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(w, "Usage: add-room <name>")
		return
	}
	name := strings.Join(args, " ")
	c.house.AddRoom(model.NewRoom(name))
	fmt.Fprintf(w, "Added room [%d] %s\n", c.house.Len()-1, name)
}

func (c *Console) cmdAddSocket(w io.Writer, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(w, "Usage: add-socket <room> <watts> <name>")
		return
	}
	room, ok := c.roomArg(w, args[0])
	if !ok {
		return
	}
	watts, err := strconv.ParseFloat(args[1], 64)
	if err != nil || watts < 0 {
		fmt.Fprintf(w, "Invalid watts: %s\n", args[1])
		return
	}
	name := strings.Join(args[2:], " ")
	room.AddDevice(model.SocketDevice(model.NewSocket(name, false, watts)))
	fmt.Fprintf(w, "Added socket [%d] %s\n", room.Len()-1, name)
}

func (c *Console) cmdAddThermo(w io.Writer, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(w, "Usage: add-thermo <room> <temp> <name>")
		return
	}
	room, ok := c.roomArg(w, args[0])
	if !ok {
		return
	}
	temp, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(w, "Invalid temperature: %s\n", args[1])
		return
	}
	name := strings.Join(args[2:], " ")
	room.AddDevice(model.ThermometerDevice(model.NewThermometer(name, temp)))
	fmt.Fprintf(w, "Added thermometer [%d] %s\n", room.Len()-1, name)
}

func (c *Console) cmdRemoveRoom(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: remove-room <room>")
		return
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(w, "Invalid index: %s\n", args[0])
		return
	}
	room, err := c.house.RemoveRoom(idx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Removed room %s\n", room.Name())
}

func (c *Console) cmdRemoveDevice(w io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(w, "Usage: remove-device <room> <device>")
		return
	}
	room, ok := c.roomArg(w, args[0])
	if !ok {
		return
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(w, "Invalid index: %s\n", args[1])
		return
	}
	device, err := room.RemoveDevice(idx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Removed device %s\n", device.Name())
}

func (c *Console) cmdSwitch(w io.Writer, args []string, on bool) {
	verb := "off"
	if on {
		verb = "on"
	}
	if len(args) != 2 {
		fmt.Fprintf(w, "Usage: %s <room> <device>\n", verb)
		return
	}
	room, ok := c.roomArg(w, args[0])
	if !ok {
		return
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(w, "Invalid index: %s\n", args[1])
		return
	}

	var supported bool
	if on {
		supported, err = room.TurnOnDevice(idx)
	} else {
		supported, err = room.TurnOffDevice(idx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if !supported {
		fmt.Fprintln(w, "Device has no power control.")
		return
	}
	device, _ := room.Device(idx)
	fmt.Fprintf(w, "Turned %s %s\n", verb, device.Name())
}

func (c *Console) cmdTemp(w io.Writer, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(w, "Usage: temp <room> <device> <value>")
		return
	}
	room, ok := c.roomArg(w, args[0])
	if !ok {
		return
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(w, "Invalid index: %s\n", args[1])
		return
	}
	value, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(w, "Invalid temperature: %s\n", args[2])
		return
	}
	device, err := room.Device(idx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	thermo, ok := device.Thermometer()
	if !ok {
		fmt.Fprintln(w, "Device is not a thermometer.")
		return
	}
	thermo.SetTemperature(value)
	fmt.Fprintf(w, "Set %s to %v°C\n", thermo.Name(), value)
}

func (c *Console) cmdSave(w io.Writer) {
	if c.store == nil {
		fmt.Fprintln(w, "No state file configured (run with -state).")
		return
	}
	state := persistence.Capture(c.house)
	if err := c.store.Save(state); err != nil {
		fmt.Fprintf(w, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Saved snapshot %s\n", state.SnapshotID)
}

func (c *Console) cmdLoad(w io.Writer) {
	if c.store == nil {
		fmt.Fprintln(w, "No state file configured (run with -state).")
		return
	}
	state, err := c.store.Load()
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	if state == nil {
		fmt.Fprintln(w, "No saved state.")
		return
	}
	house, err := state.Restore()
	if err != nil {
		fmt.Fprintf(w, "Restore failed: %v\n", err)
		return
	}
	c.house = house
	fmt.Fprintf(w, "Loaded snapshot %s\n", state.SnapshotID)
}

func (c *Console) cmdExport(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: export <path>")
		return
	}
	data, err := persistence.EncodeState(persistence.Capture(c.house))
	if err != nil {
		fmt.Fprintf(w, "Encode failed: %v\n", err)
		return
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		fmt.Fprintf(w, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Exported %d bytes to %s\n", len(data), args[0])
}

// roomArg resolves a room index argument, printing a diagnostic on failure.
func (c *Console) roomArg(w io.Writer, arg string) (*model.Room, bool) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(w, "Invalid room index: %s\n", arg)
		return nil, false
	}
	room, err := c.house.Room(idx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return nil, false
	}
	return room, true
}
