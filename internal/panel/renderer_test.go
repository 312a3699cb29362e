package panel

import (
	"testing"
	"time"

	"lifepanel/pkg/bitgrid"
)

type rowWrite struct {
	tile, row int
	bits      uint8
}

// fakeDisplay records writes in order and mirrors them into a framebuffer.
type fakeDisplay struct {
	writes    []rowWrite
	frame     [Tiles][TileSize]uint8
	intensity [Tiles]int
}

func (f *fakeDisplay) SetRow(tile, row int, bits uint8) {
	f.writes = append(f.writes, rowWrite{tile, row, bits})
	f.frame[tile][row] = bits
}

func (f *fakeDisplay) SetIntensity(tile, level int) { f.intensity[tile] = level }

func (f *fakeDisplay) Clear(tile int) {
	f.frame[tile] = [TileSize]uint8{}
}

func (f *fakeDisplay) Shutdown(tile int, off bool) {}

func newTestRenderer() (*Renderer, *fakeDisplay) {
	fd := &fakeDisplay{}
	r := NewRenderer(fd)
	r.sleep = func(time.Duration) {}
	return r, fd
}

func TestTileMapping(t *testing.T) {
	cases := []struct {
		row, col int
		tile     int
	}{
		{0, 0, 0},
		{0, 15, 1},
		{15, 0, 2},
		{15, 15, 3},
		{7, 7, 0},
		{8, 8, 3},
		{7, 8, 1},
		{8, 7, 2},
	}
	for _, c := range cases {
		if got := TileFor(c.row, c.col); got != c.tile {
			t.Fatalf("TileFor(%d,%d) = %d, want %d", c.row, c.col, got, c.tile)
		}
	}
}

func TestInstantPlacesCornerCell(t *testing.T) {
	var g bitgrid.Grid
	g.Set(0, 0, true)

	r, fd := newTestRenderer()
	r.Instant(g)

	if fd.frame[0][0] != 0x80 {
		t.Fatalf("tile 0 row 0 = %#02x, want 0x80", fd.frame[0][0])
	}
	for tile := 1; tile < Tiles; tile++ {
		for row := 0; row < TileSize; row++ {
			if fd.frame[tile][row] != 0 {
				t.Fatalf("tile %d row %d should be empty", tile, row)
			}
		}
	}
}

func TestStrategiesAgreeOnFinalFrame(t *testing.T) {
	var g bitgrid.Grid
	g.Set(0, 0, true)
	g.Set(3, 12, true)
	g.Set(12, 3, true)
	g.Set(15, 15, true)

	rInstant, fdInstant := newTestRenderer()
	rInstant.Instant(g)

	rScan, fdScan := newTestRenderer()
	rScan.Scan(g, 100*time.Millisecond)

	rRipple, fdRipple := newTestRenderer()
	rRipple.Ripple(g)

	if fdScan.frame != fdInstant.frame {
		t.Fatal("scan must end on the same frame as instant")
	}
	if fdRipple.frame != fdInstant.frame {
		t.Fatal("ripple must end on the same frame as instant")
	}

	// Rendering reads the grid without mutating it.
	var want bitgrid.Grid
	want.Set(0, 0, true)
	want.Set(3, 12, true)
	want.Set(12, 3, true)
	want.Set(15, 15, true)
	if !g.Equal(want) {
		t.Fatal("rendering mutated the source grid")
	}
}

func TestScanWritesBottomHalfFirst(t *testing.T) {
	r, fd := newTestRenderer()
	r.Scan(bitgrid.Grid{}, 0)

	if len(fd.writes) != Tiles*TileSize {
		t.Fatalf("scan issued %d writes, want %d", len(fd.writes), Tiles*TileSize)
	}
	for i, w := range fd.writes[:2*TileSize] {
		if w.tile != 2 && w.tile != 3 {
			t.Fatalf("write %d hit tile %d before the bottom half finished", i, w.tile)
		}
	}
	for i, w := range fd.writes[2*TileSize:] {
		if w.tile != 0 && w.tile != 1 {
			t.Fatalf("late write %d hit bottom tile %d", i, w.tile)
		}
	}
}

func TestRowDelayClamps(t *testing.T) {
	if d := RowDelay(0); d != MinRowDelay {
		t.Fatalf("zero period should clamp to MinRowDelay, got %v", d)
	}
	if d := RowDelay(time.Hour); d != MaxRowDelay {
		t.Fatalf("huge period should clamp to MaxRowDelay, got %v", d)
	}
	mid := RowDelay(320 * time.Millisecond)
	if mid <= MinRowDelay || mid >= MaxRowDelay {
		t.Fatalf("mid-range period should land between the clamps, got %v", mid)
	}
}

func TestRippleMasksMonotonic(t *testing.T) {
	masks := RippleMasks()

	prev := -1
	for k, m := range masks {
		pop := m.Population()
		if pop <= prev {
			t.Fatalf("frame %d coverage %d does not grow past %d", k, pop, prev)
		}
		prev = pop

		// Every cell of the previous frame stays covered.
		if k > 0 {
			if !masks[k-1].Mask(m).Equal(masks[k-1]) {
				t.Fatalf("frame %d dropped cells revealed by frame %d", k, k-1)
			}
		}
	}

	last := masks[RippleFrames-1]
	if last.Population() != bitgrid.Size*bitgrid.Size {
		t.Fatal("final ripple frame must cover the whole grid")
	}
}
