package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/kaldras/gcnput/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelTrace, log.ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, log.ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, log.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, log.ParseLevel("bogus"))
	assert.Equal(t, slog.LevelError, log.ParseLevel("error"))
}

func TestRawLoggerHexdump(t *testing.T) {
	var buf bytes.Buffer
	raw := log.NewRaw(&buf)
	raw.Report("in", []byte{0x21, 0x10, 0x00, 0xFF})
	assert.Equal(t, "in 211000ff\n", buf.String())
}

func TestRawLoggerDiscards(t *testing.T) {
	raw := log.NewRaw(nil)
	assert.NotPanics(t, func() { raw.Report("in", []byte{1, 2, 3}) })
}
