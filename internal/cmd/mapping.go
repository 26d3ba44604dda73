package cmd

import (
	"fmt"
	"log/slog"

	"github.com/kaldras/gcnput/internal/configpaths"
	"github.com/kaldras/gcnput/n64"
)

// Mapping manages the controller mapping file.
type Mapping struct {
	File string `help:"Mapping file path (default: user config dir)" env:"GCNPUT_MAPPING_FILE"`

	Init MappingInit `cmd:"" help:"Write the default mapping file"`
	Show MappingShow `cmd:"" help:"Print the active mapping and its bit patterns"`
}

func (m *Mapping) path() (string, error) {
	if m.File != "" {
		return m.File, nil
	}
	return configpaths.MappingFilePath()
}

type MappingInit struct{}

func (c *MappingInit) Run(parent *Mapping, logger *slog.Logger) error {
	path, err := parent.path()
	if err != nil {
		return err
	}
	if _, err := n64.WriteDefault(path); err != nil {
		return err
	}
	logger.Info("wrote default mapping", "path", path)
	return nil
}

type MappingShow struct{}

func (c *MappingShow) Run(parent *Mapping, logger *slog.Logger) error {
	path, err := parent.path()
	if err != nil {
		return err
	}

	mapping, err := n64.LoadMapping(path)
	if err != nil {
		logger.Warn("mapping file not usable, showing defaults", "path", path, "error", err)
	}

	rows := []struct {
		input  string
		target n64.Button
	}{
		{"a", mapping.A},
		{"b", mapping.B},
		{"x", mapping.X},
		{"y", mapping.Y},
		{"start", mapping.Start},
		{"z", mapping.Z},
		{"l", mapping.L},
		{"r", mapping.R},
		{"d_pad_left", mapping.DPadLeft},
		{"d_pad_right", mapping.DPadRight},
		{"d_pad_down", mapping.DPadDown},
		{"d_pad_up", mapping.DPadUp},
		{"c_stick_left", mapping.CStickLeft},
		{"c_stick_right", mapping.CStickRight},
		{"c_stick_down", mapping.CStickDown},
		{"c_stick_up", mapping.CStickUp},
	}
	for _, row := range rows {
		fmt.Printf("%-14s -> %-9s (%#06x)\n", row.input, row.target, row.target.BitPattern())
	}
	return nil
}
