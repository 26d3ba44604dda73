// Package n64 maps decoded GameCube controller state onto the N64
// digital-button bitmask and signed axes expected by the host, and
// owns the persisted button-mapping configuration.
package n64

import (
	"github.com/kaldras/gcnput/report"
)

// Button identifies one N64 controller input.
type Button uint8

const (
	A Button = iota
	B
	Start
	Z
	L
	R
	DPadLeft
	DPadRight
	DPadDown
	DPadUp
	CLeft
	CRight
	CDown
	CUp
)

// BitPattern returns the button's bit in the host BUTTONS bitmask.
func (b Button) BitPattern() uint32 {
	switch b {
	case DPadRight:
		return 0x0001
	case DPadLeft:
		return 0x0002
	case DPadDown:
		return 0x0004
	case DPadUp:
		return 0x0008
	case Start:
		return 0x0010
	case Z:
		return 0x0020
	case B:
		return 0x0040
	case A:
		return 0x0080
	case CRight:
		return 0x0100
	case CLeft:
		return 0x0200
	case CDown:
		return 0x0400
	case CUp:
		return 0x0800
	case R:
		return 0x1000
	case L:
		return 0x2000
	default:
		return 0
	}
}

// Tuning holds the analog conditioning parameters applied when
// assembling host state. Different consumers may apply different
// tunings to the same snapshot.
type Tuning struct {
	// Deadzone and Sensitivity condition the main stick.
	Deadzone    uint8
	Sensitivity uint8
	// CDeadzone is the per-axis threshold for the C stick.
	CDeadzone uint8
	// TriggerThreshold is the analog pull beyond which a trigger
	// counts as a digital shoulder press.
	TriggerThreshold uint8
}

// DefaultTuning matches the calibration the plugin ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Deadzone:         15,
		Sensitivity:      100,
		CDeadzone:        15,
		TriggerThreshold: 148,
	}
}

// Assemble turns one channel's decoded state into the host-facing
// BUTTONS bitmask plus the conditioned main stick axes.
//
// Each mask bit is set iff its documented condition over the
// controller state holds: digital buttons through the mapping,
// shoulder bits when the digital flag is set or the analog trigger
// exceeds the threshold, and C buttons from the conditioned C-stick
// quadrant (recentered sign after deadzone).
func Assemble(s report.ControllerState, m Mapping, tuning Tuning) (mask uint32, stickX, stickY int8) {
	if !s.Connected() {
		return 0, 0, 0
	}

	stickX, stickY = s.StickWithDeadzone(tuning.Deadzone, tuning.Sensitivity)
	substickX, substickY := s.SubstickWithDeadzone(tuning.CDeadzone)

	press := func(held bool, target Button) {
		if held {
			mask |= target.BitPattern()
		}
	}

	press(s.Pressed(report.ButtonA), m.A)
	press(s.Pressed(report.ButtonB), m.B)
	press(s.Pressed(report.ButtonX), m.X)
	press(s.Pressed(report.ButtonY), m.Y)
	press(s.Pressed(report.ButtonStart), m.Start)
	press(s.Pressed(report.ButtonZ), m.Z)

	press(s.Pressed(report.ButtonL) || s.TriggerLeft > tuning.TriggerThreshold, m.L)
	press(s.Pressed(report.ButtonR) || s.TriggerRight > tuning.TriggerThreshold, m.R)

	press(s.Pressed(report.ButtonDPadLeft), m.DPadLeft)
	press(s.Pressed(report.ButtonDPadRight), m.DPadRight)
	press(s.Pressed(report.ButtonDPadDown), m.DPadDown)
	press(s.Pressed(report.ButtonDPadUp), m.DPadUp)

	press(substickX < 0, m.CStickLeft)
	press(substickX > 0, m.CStickRight)
	press(substickY < 0, m.CStickDown)
	press(substickY > 0, m.CStickUp)

	return mask, stickX, stickY
}

// AssembleChannel is the lenient host entry point: the host supplies
// its raw channel index and out-of-range values saturate instead of
// failing, for compatibility with frontends that probe extra ports.
func AssembleChannel(state report.AdapterState, channel int, m Mapping, tuning Tuning) (uint32, int8, int8) {
	return Assemble(state.Controller(report.SaturatingChannel(channel)), m, tuning)
}
