package report

import "math"

// StickWithDeadzone applies radial deadzone suppression and
// sensitivity remapping to the main stick and returns signed axes.
//
// The raw axes are recentered at 128, converted to polar form, and
// suppressed entirely when the radius is within the deadzone circle.
// Outside it, the remaining travel is rescaled so that higher
// sensitivity yields a larger output radius for the same displacement:
//
//	r' = 8000 * (r - deadzone) / ((255 - sensitivity) * (127 - deadzone))
//
// The constant 8000 encodes the target device's axis scaling and must
// not change; output is clamped to the int8 range. The transform is
// deterministic and always recomputes from the raw state.
func (s ControllerState) StickWithDeadzone(deadzone, sensitivity uint8) (int8, int8) {
	x := float64(int8(s.StickX - 128))
	y := float64(int8(s.StickY - 128))

	radius := math.Hypot(x, y)
	if radius <= float64(deadzone) {
		return 0, 0
	}

	angle := math.Atan2(y, x)
	effective := float64(255 - uint16(sensitivity))
	scaled := 8000 * (radius - float64(deadzone)) / (effective * (127 - float64(deadzone)))

	return clampInt8(scaled * math.Cos(angle)), clampInt8(scaled * math.Sin(angle))
}

// SubstickWithDeadzone applies independent per-axis deadzone
// suppression to the secondary stick: each axis is recentered at 128
// and zeroed when its magnitude is below the threshold. There is no
// sensitivity rescaling on the secondary stick.
func (s ControllerState) SubstickWithDeadzone(deadzone uint8) (int8, int8) {
	return axisWithDeadzone(s.SubstickX, deadzone), axisWithDeadzone(s.SubstickY, deadzone)
}

func axisWithDeadzone(raw, deadzone uint8) int8 {
	v := int8(raw - 128)
	if magnitude(v) < int32(deadzone) {
		return 0
	}
	return v
}

func magnitude(v int8) int32 {
	// int32 so that -128 does not overflow on negation.
	m := int32(v)
	if m < 0 {
		m = -m
	}
	return m
}

func clampInt8(v float64) int8 {
	r := math.Round(v)
	switch {
	case r > math.MaxInt8:
		return math.MaxInt8
	case r < math.MinInt8:
		return math.MinInt8
	default:
		return int8(r)
	}
}
