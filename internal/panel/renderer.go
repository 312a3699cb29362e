package panel

import (
	"time"

	"lifepanel/pkg/bitgrid"
)

// Scan pacing bounds. The per-row delay tracks the simulation period so a
// faster simulation unrolls faster, but it never drops below a visible
// minimum or stretches longer than the tick itself.
const (
	MinRowDelay = time.Millisecond
	MaxRowDelay = 25 * time.Millisecond

	// scanRows is the number of row writes per full scan: 8 rows across
	// each of the two tile halves.
	scanRows = 2 * TileSize

	rippleFrameDelay = 35 * time.Millisecond
)

// Renderer converts a logical grid into tile-row writes using one of three
// strategies. It only ever reads the grid.
type Renderer struct {
	disp  Display
	masks [RippleFrames]bitgrid.Grid

	// sleep is swappable so tests run without real-time pauses.
	sleep func(time.Duration)
}

// NewRenderer wires a renderer to its display collaborator.
func NewRenderer(d Display) *Renderer {
	return &Renderer{disp: d, masks: RippleMasks(), sleep: time.Sleep}
}

// SetSleep replaces the pacing function. Tests and headless runs use this to
// drop the real-time pauses.
func (r *Renderer) SetSleep(fn func(time.Duration)) {
	if fn != nil {
		r.sleep = fn
	}
}

// Instant writes every tile row in one pass with no inter-row delay. Used on
// page changes.
func (r *Renderer) Instant(g bitgrid.Grid) {
	for tile := 0; tile < Tiles; tile++ {
		for row := 0; row < TileSize; row++ {
			r.disp.SetRow(tile, row, TileRow(g, tile, row))
		}
	}
}

// Scan writes the bottom tile half first, then the top, pausing between rows.
// The delay is derived from the current tick period and clamped, producing
// the unrolling effect synchronized to simulation speed.
func (r *Renderer) Scan(g bitgrid.Grid, period time.Duration) {
	delay := RowDelay(period)
	for _, half := range [2]int{1, 0} {
		for row := 0; row < TileSize; row++ {
			r.disp.SetRow(2*half, row, TileRow(g, 2*half, row))
			r.disp.SetRow(2*half+1, row, TileRow(g, 2*half+1, row))
			r.sleep(delay)
		}
	}
}

// Ripple reveals the grid through the 15 concentric masks with a fixed
// per-frame delay. Boot demo only.
func (r *Renderer) Ripple(g bitgrid.Grid) {
	for _, m := range r.masks {
		r.Instant(g.Mask(m))
		r.sleep(rippleFrameDelay)
	}
}

// RowDelay maps a tick period to the per-row scan pause, clamped to the
// supported range.
func RowDelay(period time.Duration) time.Duration {
	delay := period / (2 * scanRows)
	if delay < MinRowDelay {
		delay = MinRowDelay
	}
	if delay > MaxRowDelay {
		delay = MaxRowDelay
	}
	return delay
}
