// Command smarthome builds a smart-home model and reports on it.
//
// The house is built from the first available source: a YAML layout file,
// a previously saved state file, or a built-in demo house. By default the
// tool prints the house report and exits; with -interactive it drops into
// a command console for editing and controlling the model.
//
// Usage:
//
//	smarthome [flags]
//
// Flags:
//
//	-config string      YAML house layout file
//	-state string       JSON state file for snapshots
//	-interactive        Run the interactive console
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Print a report of the built-in demo house
//	smarthome
//
//	# Build from a layout and keep state across runs
//	smarthome -config house.yaml -state state/house.json -interactive
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smarthome-project/smarthome-go/cmd/smarthome/interactive"
	"github.com/smarthome-project/smarthome-go/pkg/config"
	"github.com/smarthome-project/smarthome-go/pkg/examples"
	"github.com/smarthome-project/smarthome-go/pkg/model"
	"github.com/smarthome-project/smarthome-go/pkg/persistence"
)

func main() {
	configPath := flag.String("config", "", "YAML house layout file")
	statePath := flag.String("state", "", "JSON state file for snapshots")
	interactiveMode := flag.Bool("interactive", false, "run the interactive console")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := newLogger(*logLevel)

	var store *persistence.StateStore
	if *statePath != "" {
		store = persistence.NewStateStore(*statePath)
	}

	house, err := buildHouse(*configPath, store, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build house")
		os.Exit(1)
	}

	if *interactiveMode {
		console, err := interactive.New(house, store)
		if err != nil {
			logger.Error().Err(err).Msg("failed to start console")
			os.Exit(1)
		}
		console.Run()
		house = console.House()
	} else {
		fmt.Print(house.Report())
	}

	if store != nil {
		state := persistence.Capture(house)
		if err := store.Save(state); err != nil {
			logger.Error().Err(err).Msg("failed to save state")
			os.Exit(1)
		}
		logger.Info().Str("snapshot_id", state.SnapshotID).Msg("state saved")
	}
}

// buildHouse picks the house source: layout file, saved state, or demo.
func buildHouse(configPath string, store *persistence.StateStore, logger zerolog.Logger) (*model.House, error) {
	if configPath != "" {
		layout, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("config", configPath).Msg("built house from layout")
		return layout.Build(), nil
	}

	if store != nil {
		state, err := store.Load()
		if err != nil {
			return nil, err
		}
		if state != nil {
			house, err := state.Restore()
			if err != nil {
				return nil, err
			}
			logger.Debug().Str("snapshot_id", state.SnapshotID).Msg("restored house from state")
			return house, nil
		}
	}

	logger.Debug().Msg("using demo house")
	return examples.NewDemoHouse(), nil
}

func newLogger(inlevel string) zerolog.Logger {
	var level zerolog.Level
	switch strings.ToLower(inlevel) {
	case "debug":
		level = zerolog.DebugLevel
	case "trace":
		level = zerolog.TraceLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
