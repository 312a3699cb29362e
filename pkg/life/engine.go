package life

import "lifepanel/pkg/bitgrid"

// Step advances the automaton by one generation under the standard B3/S23
// rule on the toroidal 8-neighborhood. The result is computed entirely from
// the passed-in snapshot; the input grid is never mutated.
func Step(g bitgrid.Grid) bitgrid.Grid {
	var next bitgrid.Grid
	for r := 0; r < bitgrid.Size; r++ {
		for c := 0; c < bitgrid.Size; c++ {
			n := liveNeighbors(g, r, c)
			alive := g.Get(r, c)
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next.Set(r, c, true)
			}
		}
	}
	return next
}

func liveNeighbors(g bitgrid.Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}
