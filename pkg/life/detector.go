package life

import (
	"time"

	"lifepanel/pkg/bitgrid"
)

// checkpointInterval is the sampling stride for long-cycle detection. Patterns
// that travel (gliders, spaceships) never repeat inside the short history
// ring, but their bit pattern coincides with an earlier one whenever the grid
// size divides the distance covered by a whole number of drift periods.
// Sampling every 64th generation catches those cases without storing a full
// history. It is an approximation: regimes whose period does not divide the
// stride (a period-5 oscillator, say) go undetected until the phases happen
// to line up on a sample.
const checkpointInterval = 64

const ringLen = 4

// Detector watches a stream of generations and reports when the simulation
// has entered a repeating cycle. It keeps the current grid plus the three
// prior ones for short-cycle detection, and a checkpoint grid refreshed every
// checkpointInterval generations for the travelling-pattern heuristic.
type Detector struct {
	ring       [ringLen]bitgrid.Grid
	seen       int
	checkpoint bitgrid.Grid
	settled    bool
	settledAt  time.Time

	now func() time.Time
}

// NewDetector returns a detector with an empty history.
func NewDetector() *Detector {
	return &Detector{now: time.Now}
}

// Reset clears the settled state and primes the history with the seed grid.
// The seed becomes both the newest ring entry and the first checkpoint, so a
// travelling pattern that returns to its starting cells on a checkpoint
// generation is recognized.
func (d *Detector) Reset(seed bitgrid.Grid) {
	d.ring = [ringLen]bitgrid.Grid{seed}
	d.seen = 1
	d.checkpoint = seed
	d.settled = false
	d.settledAt = time.Time{}
}

// Observe records a freshly produced generation. The ring shifts by one, the
// new grid is compared against the three older entries, and on every
// checkpointInterval-th generation it is additionally compared against the
// checkpoint before overwriting it.
func (d *Detector) Observe(g bitgrid.Grid, generation uint64) {
	for i := ringLen - 1; i > 0; i-- {
		d.ring[i] = d.ring[i-1]
	}
	d.ring[0] = g
	if d.seen < ringLen {
		d.seen++
	}

	for i := 1; i < d.seen; i++ {
		if g.Equal(d.ring[i]) {
			d.markSettled()
			break
		}
	}

	if generation%checkpointInterval == 0 {
		if g.Equal(d.checkpoint) {
			d.markSettled()
		}
		d.checkpoint = g
	}
}

func (d *Detector) markSettled() {
	if d.settled {
		return
	}
	d.settled = true
	d.settledAt = d.now()
}

// Settled reports whether a repeat has been observed since the last Reset.
func (d *Detector) Settled() bool { return d.settled }

// SettledAt returns the time the repeat was first observed. The zero time
// means the detector has not settled.
func (d *Detector) SettledAt() time.Time { return d.settledAt }
