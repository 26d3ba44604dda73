package n64_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kaldras/gcnput/n64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMappingSwapsZAndL(t *testing.T) {
	m := n64.DefaultMapping()
	assert.Equal(t, n64.L, m.Z)
	assert.Equal(t, n64.Z, m.L)
	assert.Equal(t, n64.CRight, m.X)
	assert.Equal(t, n64.CLeft, m.Y)
}

func TestWriteDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.toml")

	written, err := n64.WriteDefault(path)
	require.NoError(t, err)
	assert.Equal(t, n64.DefaultMapping(), written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Controller mapping for gcnput.")
	assert.Contains(t, string(data), `z = "L"`)

	loaded, err := n64.LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, written, loaded)
}

func TestLoadMappingCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.toml")
	custom := `
a = "B"
b = "A"
x = "CUp"
y = "CDown"
start = "Start"
z = "Z"
l = "L"
r = "R"
d_pad_left = "DPadLeft"
d_pad_right = "DPadRight"
d_pad_down = "DPadDown"
d_pad_up = "DPadUp"
c_stick_left = "CLeft"
c_stick_right = "CRight"
c_stick_down = "CDown"
c_stick_up = "CUp"
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	m, err := n64.LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, n64.B, m.A)
	assert.Equal(t, n64.A, m.B)
	assert.Equal(t, n64.CUp, m.X)
	assert.Equal(t, n64.Z, m.Z)
}

func TestLoadMappingInvalidFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.toml")
	require.NoError(t, os.WriteFile(path, []byte(`a = "NotAButton"`), 0o644))

	m, err := n64.LoadMapping(path)
	require.Error(t, err)
	assert.Equal(t, n64.DefaultMapping(), m)
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.toml")

	// Missing file: defaults are written.
	m, err := n64.LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, n64.DefaultMapping(), m)
	_, err = os.Stat(path)
	require.NoError(t, err)

	// Corrupt file: rewritten with defaults.
	require.NoError(t, os.WriteFile(path, []byte("not toml = ["), 0o644))
	m, err = n64.LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, n64.DefaultMapping(), m)

	reloaded, err := n64.LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, n64.DefaultMapping(), reloaded)
}

func TestButtonTextRoundTrip(t *testing.T) {
	for _, b := range []n64.Button{
		n64.A, n64.B, n64.Start, n64.Z, n64.L, n64.R,
		n64.DPadLeft, n64.DPadRight, n64.DPadDown, n64.DPadUp,
		n64.CLeft, n64.CRight, n64.CDown, n64.CUp,
	} {
		text, err := b.MarshalText()
		require.NoError(t, err)

		var back n64.Button
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, b, back)
	}

	var b n64.Button
	assert.Error(t, b.UnmarshalText([]byte("cup")), "names are case sensitive")
}
