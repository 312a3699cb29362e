package input

import "time"

// DefaultDebounce is the bounce window for the panel push button. Presses
// inside the window coalesce, which is fine at human timescales.
const DefaultDebounce = 20 * time.Millisecond

// Button debounces a raw switch level sampled once per loop iteration. It
// exposes a consumed press edge and a held-duration query; the latter flips
// the potentiometer between speed and brightness control.
type Button struct {
	debounce time.Duration
	now      func() time.Time

	raw        bool
	rawSince   time.Time
	stable     bool
	pressedAt  time.Time
	pressEdge  bool
	everSample bool
}

// NewButton returns a debouncer with the given bounce window.
func NewButton(debounce time.Duration) *Button {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Button{debounce: debounce, now: time.Now}
}

// Sample feeds the current raw level. The stable state only follows the raw
// level after it has held steady for the bounce window.
func (b *Button) Sample(pressed bool) {
	now := b.now()
	if !b.everSample {
		b.everSample = true
		b.raw = pressed
		b.rawSince = now
		return
	}

	if pressed != b.raw {
		b.raw = pressed
		b.rawSince = now
		return
	}

	if b.raw == b.stable || now.Sub(b.rawSince) < b.debounce {
		return
	}

	b.stable = b.raw
	if b.stable {
		b.pressedAt = now
		b.pressEdge = true
	}
}

// JustPressed reports a debounced press edge and consumes it.
func (b *Button) JustPressed() bool {
	edge := b.pressEdge
	b.pressEdge = false
	return edge
}

// HeldFor reports whether the button has been held down for at least d.
func (b *Button) HeldFor(d time.Duration) bool {
	return b.stable && b.now().Sub(b.pressedAt) >= d
}
