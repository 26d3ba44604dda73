//go:build windows

package configpaths

import (
	"os"
	"path/filepath"
)

// SystemConfigDir returns the machine-wide configuration directory.
// On Windows, ProgramData when available.
func SystemConfigDir() (string, error) {
	if base := os.Getenv("ProgramData"); base != "" {
		return filepath.Join(base, appDir), nil
	}
	return DefaultConfigDir()
}
