// Package report decodes the fixed 37-byte input report of the Wii U /
// Switch GameCube controller adapter into per-channel controller state,
// and provides the analog stick conditioning applied on top of it.
package report

import "strings"

// Length is the size of one adapter input report in bytes.
//
// Layout:
//
//	0:     adapter status/header byte (unused)
//	1-9:   channel 1 (status, buttons b1, buttons b2, 6 analog bytes)
//	10-18: channel 2
//	19-27: channel 3
//	28-36: channel 4
const Length = 37

// channelStride is the number of report bytes one channel occupies.
const channelStride = 9

// Buttons is the digital input bitfield of one controller.
type Buttons uint16

// Button bits as decoded from the report. The low byte mirrors the
// first button byte of the wire format, bits 8-11 mirror the low
// nibble of the second.
const (
	ButtonA Buttons = 1 << iota
	ButtonB
	ButtonX
	ButtonY
	ButtonDPadLeft
	ButtonDPadRight
	ButtonDPadDown
	ButtonDPadUp
	ButtonStart
	ButtonZ
	ButtonR
	ButtonL
)

var buttonNames = []struct {
	mask Buttons
	name string
}{
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonX, "X"},
	{ButtonY, "Y"},
	{ButtonDPadLeft, "Left"},
	{ButtonDPadRight, "Right"},
	{ButtonDPadDown, "Down"},
	{ButtonDPadUp, "Up"},
	{ButtonStart, "Start"},
	{ButtonZ, "Z"},
	{ButtonR, "R"},
	{ButtonL, "L"},
}

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	var names []string
	for _, entry := range buttonNames {
		if b&entry.mask != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "+")
}

// Connection describes what is plugged into an adapter channel,
// derived from the high nibble of the channel status byte.
type Connection uint8

const (
	ConnectionNone Connection = iota
	ConnectionWired
	ConnectionWireless
)

func (c Connection) String() string {
	switch c {
	case ConnectionWired:
		return "wired"
	case ConnectionWireless:
		return "wireless"
	default:
		return "none"
	}
}

// ControllerState is the decoded state of a single adapter channel.
//
// The stick and substick axes are raw unsigned bytes centered at 128;
// the trigger axes are raw unsigned bytes increasing with pull.
type ControllerState struct {
	Connection Connection
	Buttons    Buttons

	StickX    uint8
	StickY    uint8
	SubstickX uint8
	SubstickY uint8

	TriggerLeft  uint8
	TriggerRight uint8
}

// Pressed reports whether all buttons in mask are held.
func (s ControllerState) Pressed(mask Buttons) bool {
	return s.Buttons&mask == mask
}

// Connected reports whether any controller is on the channel. This is
// the adapter-revision-independent check; some third-party adapters
// report nibble values other than wired/wireless.
func (s ControllerState) Connected() bool {
	return s.Connection != ConnectionNone
}

// Any reports whether the controller shows any activity: a held
// button, or a stick pushed well outside its neutral range.
func (s ControllerState) Any() bool {
	return s.Buttons != 0 ||
		s.StickX < 64 || s.StickX > 192 ||
		s.StickY < 64 || s.StickY > 192
}

// AdapterState is the decoded state of all four channels from one
// report. The zero value is the all-disconnected idle state.
type AdapterState struct {
	Controllers [4]ControllerState
}

// Controller returns the state of the given channel.
func (a AdapterState) Controller(ch Channel) ControllerState {
	return a.Controllers[ch]
}

// AnyConnected reports whether any channel has a controller on it.
func (a AdapterState) AnyConnected() bool {
	for _, c := range a.Controllers {
		if c.Connected() {
			return true
		}
	}
	return false
}

// Decode turns one raw adapter report into an AdapterState.
//
// Decode is total: it never fails. The transport contract fixes the
// report at Length bytes, so a short buffer is a programming error
// upstream; channels whose bytes are missing decode to the zero
// (disconnected) state instead of reading out of bounds.
func Decode(raw []byte) AdapterState {
	var state AdapterState
	for ch := 0; ch < 4; ch++ {
		base := 1 + channelStride*ch
		if base+channelStride > len(raw) {
			continue
		}
		state.Controllers[ch] = decodeChannel(raw[base : base+channelStride])
	}
	return state
}

// decodeChannel decodes the 9 bytes of a single channel.
//
// Bytes:
//
//	0:   status (high nibble: 0 none, 1 wired, 2 wireless)
//	1:   b1 (bit 0 A, 1 B, 2 X, 3 Y, 4 left, 5 right, 6 down, 7 up)
//	2:   b2 (bit 0 start, 1 Z, 2 R, 3 L; high nibble reserved)
//	3-6: stick X/Y, substick X/Y
//	7-8: left/right trigger
func decodeChannel(b []byte) ControllerState {
	s := ControllerState{
		Buttons: Buttons(b[1]) | Buttons(b[2]&0x0F)<<8,

		StickX:    b[3],
		StickY:    b[4],
		SubstickX: b[5],
		SubstickY: b[6],

		TriggerLeft:  b[7],
		TriggerRight: b[8],
	}

	switch nibble := b[0] >> 4; {
	case nibble&0x1 != 0:
		s.Connection = ConnectionWired
	case nibble&0x2 != 0:
		s.Connection = ConnectionWireless
	case nibble != 0:
		// Unknown kind, but something is plugged in. Treat as wired.
		s.Connection = ConnectionWired
	}

	return s
}
