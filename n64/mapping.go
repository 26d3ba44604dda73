package n64

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

var buttonNames = map[Button]string{
	A:         "A",
	B:         "B",
	Start:     "Start",
	Z:         "Z",
	L:         "L",
	R:         "R",
	DPadLeft:  "DPadLeft",
	DPadRight: "DPadRight",
	DPadDown:  "DPadDown",
	DPadUp:    "DPadUp",
	CLeft:     "CLeft",
	CRight:    "CRight",
	CDown:     "CDown",
	CUp:       "CUp",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// MarshalText implements encoding.TextMarshaler for the mapping file.
func (b Button) MarshalText() ([]byte, error) {
	name, ok := buttonNames[b]
	if !ok {
		return nil, fmt.Errorf("unknown N64 button %d", uint8(b))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are case
// sensitive, matching the documented file format.
func (b *Button) UnmarshalText(text []byte) error {
	for btn, name := range buttonNames {
		if name == string(text) {
			*b = btn
			return nil
		}
	}
	return fmt.Errorf("unknown N64 button name %q", text)
}

// Mapping assigns one N64 button to each logical GameCube input. The
// left side of the file is the GameCube input, the right side the N64
// button it produces.
type Mapping struct {
	A     Button `toml:"a"`
	B     Button `toml:"b"`
	X     Button `toml:"x"`
	Y     Button `toml:"y"`
	Start Button `toml:"start"`
	Z     Button `toml:"z"`
	L     Button `toml:"l"`
	R     Button `toml:"r"`

	DPadLeft  Button `toml:"d_pad_left"`
	DPadRight Button `toml:"d_pad_right"`
	DPadDown  Button `toml:"d_pad_down"`
	DPadUp    Button `toml:"d_pad_up"`

	CStickLeft  Button `toml:"c_stick_left"`
	CStickRight Button `toml:"c_stick_right"`
	CStickDown  Button `toml:"c_stick_down"`
	CStickUp    Button `toml:"c_stick_up"`
}

// DefaultMapping is the shipped layout: GC Z and L swap roles so the
// L trigger drives N64 Z, and X/Y double as C buttons.
func DefaultMapping() Mapping {
	return Mapping{
		A:     A,
		B:     B,
		X:     CRight,
		Y:     CLeft,
		Start: Start,
		Z:     L,
		L:     Z,
		R:     R,

		DPadLeft:  DPadLeft,
		DPadRight: DPadRight,
		DPadDown:  DPadDown,
		DPadUp:    DPadUp,

		CStickLeft:  CLeft,
		CStickRight: CRight,
		CStickDown:  CDown,
		CStickUp:    CUp,
	}
}

const mappingFileHeader = `# Controller mapping for gcnput.
#
# To revert to defaults simply delete this file.
# The left side of each entry is the GameCube controller input, the
# right side is the N64 controller button it produces. Values are case
# sensitive; an invalid file is replaced with the defaults.

`

// LoadMapping reads a mapping file. A missing or invalid file yields
// the default mapping along with the error, so callers can fall back
// without special-casing.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultMapping(), err
	}

	var m Mapping
	if err := toml.Unmarshal(data, &m); err != nil {
		return DefaultMapping(), fmt.Errorf("parse mapping file: %w", err)
	}
	return m, nil
}

// WriteDefault writes the commented default mapping file to path.
func WriteDefault(path string) (Mapping, error) {
	m := DefaultMapping()

	body, err := toml.Marshal(m)
	if err != nil {
		return m, fmt.Errorf("encode mapping: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(mappingFileHeader), body...), 0o644); err != nil {
		return m, err
	}
	return m, nil
}

// LoadOrCreate loads the mapping at path, writing (or rewriting) the
// default file when it is missing or invalid.
func LoadOrCreate(path string) (Mapping, error) {
	m, err := LoadMapping(path)
	if err == nil {
		return m, nil
	}
	return WriteDefault(path)
}
