// Package configpaths resolves where gcnput keeps its configuration
// and mapping files.
package configpaths

import (
	"os"
	"path/filepath"
)

const appDir = "gcnput"

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir), nil
}

// ConfigCandidatePaths returns the JSON, YAML and TOML configuration
// file candidates in loading order. userPath, when set, takes
// priority in whichever list matches its extension (or all three when
// the extension is unknown).
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if dir, err := SystemConfigDir(); err == nil {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "config.toml"))
	}
	if dir, err := DefaultConfigDir(); err == nil {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "config.toml"))
	}

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".json":
			jsonPaths = append(jsonPaths, userPath)
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
			yamlPaths = append(yamlPaths, userPath)
			tomlPaths = append(tomlPaths, userPath)
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}

// MappingFilePath returns the default controller mapping file
// location, creating the directory if needed.
func MappingFilePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "mapping.toml"), nil
}
