package input

import (
	"time"

	"lifepanel/internal/panel"
)

// AnalogMax is the top of the raw ADC range (10-bit single-ended read).
const AnalogMax = 1023

func clampRaw(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > AnalogMax {
		return AnalogMax
	}
	return raw
}

// Period remaps a raw reading into a tick period. Turning the knob up speeds
// the simulation up, so the top of the range maps to min.
func Period(raw int, min, max time.Duration) time.Duration {
	raw = clampRaw(raw)
	span := max - min
	return max - span*time.Duration(raw)/AnalogMax
}

// Intensity remaps a raw reading into a display brightness level.
func Intensity(raw int) int {
	return clampRaw(raw) * panel.MaxIntensity / AnalogMax
}
