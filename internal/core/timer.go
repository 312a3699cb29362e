package core

import "time"

// FixedStep helps run simulation updates at a steady wall-clock period. The
// period is retunable on the fly, which is how the speed potentiometer feeds
// the tick rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller with the given tick period.
// The first ShouldStep call fires immediately.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	fs.accumulator = fs.step
	return fs
}

// SetPeriod changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second / 60
	}
	f.step = period
}

// Period returns the current tick period.
func (f *FixedStep) Period() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
