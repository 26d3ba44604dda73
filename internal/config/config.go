// Package config defines the CLI structure and configuration for
// gcnput.
package config

import (
	"github.com/kaldras/gcnput/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"GCNPUT_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"GCNPUT_LOG_FILE"`
	RawFile string `help:"Raw adapter report log file path (default: none)" env:"GCNPUT_LOG_RAW_FILE"`
	NoColor bool   `help:"Disable ANSI colors in console logs" env:"GCNPUT_LOG_NO_COLOR"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Watch   cmd.Watch   `cmd:"" help:"Poll the adapter and print live controller activity"`
	Probe   cmd.Probe   `cmd:"" help:"Report what is plugged into each adapter channel"`
	Mapping cmd.Mapping `cmd:"" help:"Manage the controller mapping file"`
}
