package control

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"lifepanel/internal/input"
	"lifepanel/internal/pattern"
	"lifepanel/pkg/bitgrid"
)

// Page range. Page 0 is live random mode, 1-3 the fixed catalog, 4-6 the
// writable slots. 7-9 exist on the selector but are inert and resolve to an
// empty board.
const (
	PageRandom = 0
	MaxPage    = 9

	// BootPage is the selection shown after the startup animation.
	BootPage = 1
)

// ErrPageRange flags a page value outside [0, MaxPage] reaching the resolver.
// That can only happen through a broken transition, so callers treat it as a
// fatal programming error rather than something to recover from.
var ErrPageRange = errors.New("control: page outside valid range")

// Controller is the page state machine. Encoder detents walk the selector,
// the push button toggles between random mode and the saved slots, and every
// transition re-resolves the active grid through the onChange hook.
type Controller struct {
	page    int
	lib     *pattern.Library
	rng     *rand.Rand
	seed    bitgrid.Grid
	changed func(page int, g bitgrid.Grid)
}

// NewController builds the state machine on the boot page. The hook fires on
// every page-changed dispatch with the freshly resolved grid; it is never nil.
// Call Dispatch once after construction to resolve the boot page.
func NewController(lib *pattern.Library, rng *rand.Rand, changed func(page int, g bitgrid.Grid)) *Controller {
	return &Controller{page: BootPage, lib: lib, rng: rng, changed: changed}
}

// Page returns the current selector value.
func (c *Controller) Page() int { return c.page }

// Seed returns the seed grid of the current random run.
func (c *Controller) Seed() bitgrid.Grid { return c.seed }

// OnStep applies one encoder detent: the selector moves by ±1, clamped to the
// valid range, and the page is re-dispatched.
func (c *Controller) OnStep(d input.Direction) error {
	delta := 0
	switch d {
	case input.CW:
		delta = 1
	case input.CCW:
		delta = -1
	default:
		return nil
	}

	next := c.page + delta
	if next < PageRandom {
		next = PageRandom
	}
	if next > MaxPage {
		next = MaxPage
	}
	c.page = next
	return c.Dispatch()
}

// OnButtonPressed handles a debounced press. From random mode the current
// seed grid is saved into the cursor's writable slot and the selector jumps
// there; from any other page the selector returns to random mode, which
// regenerates a fresh seed.
func (c *Controller) OnButtonPressed() error {
	if c.page == PageRandom {
		c.page = c.lib.Save(c.seed)
	} else {
		c.page = PageRandom
	}
	return c.Dispatch()
}

// Reenter forces the selector back to random mode. The scheduler calls this
// when a settled run times out.
func (c *Controller) Reenter() error {
	c.page = PageRandom
	return c.Dispatch()
}

// Dispatch resolves the current page to its source grid and fires the
// page-changed hook.
func (c *Controller) Dispatch() error {
	g, err := c.resolve()
	if err != nil {
		return err
	}
	c.changed(c.page, g)
	return nil
}

func (c *Controller) resolve() (bitgrid.Grid, error) {
	switch {
	case c.page == PageRandom:
		c.seed = bitgrid.Random(c.rng)
		return c.seed, nil
	case c.page >= pattern.FirstFixedPage && c.page <= pattern.LastWritablePage:
		return c.lib.Grid(c.page)
	case c.page > pattern.LastWritablePage && c.page <= MaxPage:
		// Reserved pages show an empty board.
		return bitgrid.New(), nil
	default:
		return bitgrid.Grid{}, fmt.Errorf("%w: %d", ErrPageRange, c.page)
	}
}
