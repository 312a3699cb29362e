package pattern

import (
	"errors"
	"fmt"

	"lifepanel/pkg/bitgrid"
)

// Page numbers understood by the library. Page 0 (live random mode) and the
// reserved pages above LastWritablePage are not catalog lookups and never
// reach it.
const (
	FirstFixedPage    = 1
	FirstWritablePage = 4
	LastWritablePage  = 6

	fixedSlots    = 3
	writableSlots = 3
)

// ErrPage is returned when a page outside the catalog range reaches a lookup.
var ErrPage = errors.New("pattern: page outside catalog range")

// Library holds the pre-authored catalog (pages 1-3, read-only) and the
// writable slots (pages 4-6) populated at runtime from random seeds. A
// round-robin cursor picks the writable slot for the next save and advances
// on every save, regardless of which slot was read last.
type Library struct {
	fixed    [fixedSlots]bitgrid.Grid
	writable [writableSlots]bitgrid.Grid
	cursor   int
}

// NewLibrary parses the built-in catalog. Writable slots start all-dead.
func NewLibrary() (*Library, error) {
	l := &Library{}
	for i, art := range catalog {
		g, err := Parse(art)
		if err != nil {
			return nil, fmt.Errorf("catalog slot %d: %w", FirstFixedPage+i, err)
		}
		l.fixed[i] = g
	}
	return l, nil
}

// Fixed returns a copy of the i-th pre-authored entry (0-based).
func (l *Library) Fixed(i int) bitgrid.Grid { return l.fixed[i] }

// Save stores g into the writable slot under the cursor, advances the cursor,
// and returns the page number (4-6) of the slot just written.
func (l *Library) Save(g bitgrid.Grid) int {
	slot := l.cursor
	l.writable[slot] = g
	l.cursor = (l.cursor + 1) % writableSlots
	return FirstWritablePage + slot
}

// Grid resolves a catalog page (1-6) to a copy of its grid. Writable slots
// that were never saved come back all-dead, which is valid.
func (l *Library) Grid(page int) (bitgrid.Grid, error) {
	switch {
	case page >= FirstFixedPage && page < FirstWritablePage:
		return l.fixed[page-FirstFixedPage], nil
	case page >= FirstWritablePage && page <= LastWritablePage:
		return l.writable[page-FirstWritablePage], nil
	default:
		return bitgrid.Grid{}, fmt.Errorf("%w: %d", ErrPage, page)
	}
}
