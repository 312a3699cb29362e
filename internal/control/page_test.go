package control

import (
	"testing"

	"lifepanel/internal/input"
	"lifepanel/internal/pattern"
	"lifepanel/pkg/bitgrid"
	pkgcore "lifepanel/pkg/core"
)

type changeRecorder struct {
	pages []int
	grids []bitgrid.Grid
}

func (r *changeRecorder) hook(page int, g bitgrid.Grid) {
	r.pages = append(r.pages, page)
	r.grids = append(r.grids, g)
}

func newTestController(t *testing.T) (*Controller, *changeRecorder) {
	t.Helper()
	lib, err := pattern.NewLibrary()
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	rec := &changeRecorder{}
	c := NewController(lib, pkgcore.NewRNG(1).Source(), rec.hook)
	return c, rec
}

func TestBootPageWalkToFirstWritable(t *testing.T) {
	c, _ := newTestController(t)
	if c.Page() != 1 {
		t.Fatalf("boot page = %d, want 1", c.Page())
	}
	for i := 0; i < 3; i++ {
		if err := c.OnStep(input.CW); err != nil {
			t.Fatalf("OnStep: %v", err)
		}
	}
	if c.Page() != 4 {
		t.Fatalf("after 3 CW steps page = %d, want 4", c.Page())
	}
}

func TestClampAtMaxPage(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.Reenter(); err != nil {
		t.Fatalf("Reenter: %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := c.OnStep(input.CW); err != nil {
			t.Fatalf("OnStep: %v", err)
		}
	}
	if c.Page() != MaxPage {
		t.Fatalf("page = %d, want clamp at %d", c.Page(), MaxPage)
	}
	// One more step must not exceed the range either.
	if err := c.OnStep(input.CW); err != nil {
		t.Fatalf("OnStep: %v", err)
	}
	if c.Page() != MaxPage {
		t.Fatalf("page escaped the clamp: %d", c.Page())
	}
}

func TestClampAtRandomPage(t *testing.T) {
	c, _ := newTestController(t)
	for i := 0; i < 5; i++ {
		if err := c.OnStep(input.CCW); err != nil {
			t.Fatalf("OnStep: %v", err)
		}
	}
	if c.Page() != PageRandom {
		t.Fatalf("page = %d, want clamp at %d", c.Page(), PageRandom)
	}
}

func TestButtonSavesSeedRoundRobin(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.Reenter(); err != nil {
		t.Fatalf("Reenter: %v", err)
	}

	var seeds []bitgrid.Grid
	for _, wantPage := range []int{4, 5, 6} {
		seed := c.Seed()
		seeds = append(seeds, seed)

		if err := c.OnButtonPressed(); err != nil {
			t.Fatalf("OnButtonPressed: %v", err)
		}
		if c.Page() != wantPage {
			t.Fatalf("save landed on page %d, want %d", c.Page(), wantPage)
		}

		// Walk back to random mode for the next save; this regenerates
		// the seed but must not disturb the cursor.
		for c.Page() != PageRandom {
			if err := c.OnStep(input.CCW); err != nil {
				t.Fatalf("OnStep: %v", err)
			}
		}
	}

	// The slots hold the seeds in save order.
	lib := c.lib
	for i, wantPage := range []int{4, 5, 6} {
		got, err := lib.Grid(wantPage)
		if err != nil {
			t.Fatalf("Grid(%d): %v", wantPage, err)
		}
		if !got.Equal(seeds[i]) {
			t.Fatalf("slot page %d does not hold the %d-th saved seed", wantPage, i+1)
		}
	}

	// Fourth save wraps the cursor back to page 4.
	if err := c.OnButtonPressed(); err != nil {
		t.Fatalf("OnButtonPressed: %v", err)
	}
	if c.Page() != 4 {
		t.Fatalf("wrapped save landed on page %d, want 4", c.Page())
	}
}

func TestButtonFromCatalogReturnsToRandom(t *testing.T) {
	c, rec := newTestController(t)
	if err := c.OnButtonPressed(); err != nil {
		t.Fatalf("OnButtonPressed: %v", err)
	}
	if c.Page() != PageRandom {
		t.Fatalf("page = %d, want %d", c.Page(), PageRandom)
	}

	// Returning to random mode regenerates the seed grid.
	first := c.Seed()
	if err := c.OnButtonPressed(); err != nil { // save
		t.Fatalf("OnButtonPressed: %v", err)
	}
	if err := c.OnButtonPressed(); err != nil { // back to random
		t.Fatalf("OnButtonPressed: %v", err)
	}
	if c.Seed().Equal(first) {
		t.Fatal("re-entering random mode should draw a fresh seed")
	}
	if len(rec.pages) == 0 {
		t.Fatal("transitions must dispatch page changes")
	}
}

func TestReservedPagesResolveEmpty(t *testing.T) {
	c, rec := newTestController(t)
	for i := 0; i < 8; i++ {
		if err := c.OnStep(input.CW); err != nil {
			t.Fatalf("OnStep: %v", err)
		}
	}
	if c.Page() != 9 {
		t.Fatalf("page = %d, want 9", c.Page())
	}
	last := rec.grids[len(rec.grids)-1]
	if last.Population() != 0 {
		t.Fatal("reserved pages must resolve to an empty board")
	}
}

func TestStepDispatchesResolvedGrid(t *testing.T) {
	c, rec := newTestController(t)
	lib := c.lib

	if err := c.OnStep(input.CW); err != nil { // page 2, the pulsar
		t.Fatalf("OnStep: %v", err)
	}
	want, err := lib.Grid(2)
	if err != nil {
		t.Fatalf("Grid(2): %v", err)
	}
	last := rec.grids[len(rec.grids)-1]
	if !last.Equal(want) {
		t.Fatal("dispatch should hand the hook a copy of the catalog entry")
	}
	if rec.pages[len(rec.pages)-1] != 2 {
		t.Fatalf("dispatched page = %d, want 2", rec.pages[len(rec.pages)-1])
	}
}
