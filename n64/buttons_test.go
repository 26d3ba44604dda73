package n64_test

import (
	"testing"

	"github.com/kaldras/gcnput/n64"
	"github.com/kaldras/gcnput/report"
	"github.com/stretchr/testify/assert"
)

func wiredState() report.ControllerState {
	return report.ControllerState{
		Connection: report.ConnectionWired,
		StickX:     128,
		StickY:     128,
		SubstickX:  128,
		SubstickY:  128,
	}
}

func TestAssembleDigitalButtons(t *testing.T) {
	m := n64.DefaultMapping()
	tuning := n64.DefaultTuning()

	cases := []struct {
		name    string
		buttons report.Buttons
		want    uint32
	}{
		{"none", 0, 0},
		{"a", report.ButtonA, 0x0080},
		{"b", report.ButtonB, 0x0040},
		{"start", report.ButtonStart, 0x0010},
		{"x is c-right", report.ButtonX, 0x0100},
		{"y is c-left", report.ButtonY, 0x0200},
		{"gc z is n64 l", report.ButtonZ, 0x2000},
		{"gc l is n64 z", report.ButtonL, 0x0020},
		{"r", report.ButtonR, 0x1000},
		{"dpad", report.ButtonDPadUp | report.ButtonDPadLeft, 0x0008 | 0x0002},
		{
			"combination",
			report.ButtonA | report.ButtonStart | report.ButtonDPadDown,
			0x0080 | 0x0010 | 0x0004,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := wiredState()
			s.Buttons = tc.buttons
			mask, x, y := n64.Assemble(s, m, tuning)
			assert.Equal(t, tc.want, mask)
			assert.Zero(t, x)
			assert.Zero(t, y)
		})
	}
}

func TestAssembleTriggerThreshold(t *testing.T) {
	m := n64.DefaultMapping()
	tuning := n64.DefaultTuning()

	s := wiredState()
	s.TriggerLeft = tuning.TriggerThreshold
	mask, _, _ := n64.Assemble(s, m, tuning)
	assert.Zero(t, mask, "trigger at threshold must not register")

	s.TriggerLeft = tuning.TriggerThreshold + 1
	mask, _, _ = n64.Assemble(s, m, tuning)
	assert.Equal(t, uint32(0x0020), mask, "left trigger pull maps to N64 Z")

	s = wiredState()
	s.TriggerRight = 255
	mask, _, _ = n64.Assemble(s, m, tuning)
	assert.Equal(t, uint32(0x1000), mask)
}

func TestAssembleCStickQuadrants(t *testing.T) {
	m := n64.DefaultMapping()
	tuning := n64.DefaultTuning()

	cases := []struct {
		name string
		x, y uint8
		want uint32
	}{
		{"neutral", 128, 128, 0},
		{"inside deadzone", 128 + 10, 128 - 10, 0},
		{"right", 200, 128, 0x0100},
		{"left", 50, 128, 0x0200},
		{"up", 128, 200, 0x0800},
		{"down", 128, 50, 0x0400},
		{"up-right", 200, 200, 0x0100 | 0x0800},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := wiredState()
			s.SubstickX, s.SubstickY = tc.x, tc.y
			mask, _, _ := n64.Assemble(s, m, tuning)
			assert.Equal(t, tc.want, mask)
		})
	}
}

func TestAssembleStickAxes(t *testing.T) {
	m := n64.DefaultMapping()
	tuning := n64.DefaultTuning()

	s := wiredState()
	s.StickX = 255
	_, x, y := n64.Assemble(s, m, tuning)
	assert.Positive(t, x)
	assert.Zero(t, y)

	s.StickX = 128
	s.StickY = 0
	_, x, y = n64.Assemble(s, m, tuning)
	assert.Zero(t, x)
	assert.Negative(t, y)
}

func TestAssembleDisconnectedChannelIsSilent(t *testing.T) {
	s := report.ControllerState{
		Buttons: report.ButtonA | report.ButtonStart,
		StickX:  255,
		StickY:  255,
	}
	mask, x, y := n64.Assemble(s, n64.DefaultMapping(), n64.DefaultTuning())
	assert.Zero(t, mask)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestAssembleChannelSaturates(t *testing.T) {
	var state report.AdapterState
	state.Controllers[3] = wiredState()
	state.Controllers[3].Buttons = report.ButtonA

	// Out-of-range host indices clamp to the nearest channel.
	mask, _, _ := n64.AssembleChannel(state, 9, n64.DefaultMapping(), n64.DefaultTuning())
	assert.Equal(t, uint32(0x0080), mask)

	mask, _, _ = n64.AssembleChannel(state, -3, n64.DefaultMapping(), n64.DefaultTuning())
	assert.Zero(t, mask)
}

func TestBitPatterns(t *testing.T) {
	// The host bitmask layout is fixed; a change here breaks every
	// existing frontend.
	want := map[n64.Button]uint32{
		n64.DPadRight: 0x0001,
		n64.DPadLeft:  0x0002,
		n64.DPadDown:  0x0004,
		n64.DPadUp:    0x0008,
		n64.Start:     0x0010,
		n64.Z:         0x0020,
		n64.B:         0x0040,
		n64.A:         0x0080,
		n64.CRight:    0x0100,
		n64.CLeft:     0x0200,
		n64.CDown:     0x0400,
		n64.CUp:       0x0800,
		n64.R:         0x1000,
		n64.L:         0x2000,
	}
	seen := uint32(0)
	for b, bits := range want {
		assert.Equal(t, bits, b.BitPattern(), "button %s", b)
		assert.Zero(t, seen&bits, "bit pattern overlap at %s", b)
		seen |= bits
	}
}
