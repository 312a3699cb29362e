package pattern

import (
	"fmt"

	"lifepanel/pkg/bitgrid"
)

// Parse builds a grid from ASCII art: '#' marks a live cell, '.' a dead one.
// The art must be exactly bitgrid.Size lines of bitgrid.Size runes; anything
// else is rejected at construction time.
func Parse(art []string) (bitgrid.Grid, error) {
	var g bitgrid.Grid
	if len(art) != bitgrid.Size {
		return g, fmt.Errorf("pattern: want %d rows, got %d", bitgrid.Size, len(art))
	}
	for r, line := range art {
		if len(line) != bitgrid.Size {
			return g, fmt.Errorf("pattern: row %d is %d cells wide, want %d", r, len(line), bitgrid.Size)
		}
		for c := 0; c < bitgrid.Size; c++ {
			switch line[c] {
			case '#':
				g.Set(r, c, true)
			case '.':
			default:
				return g, fmt.Errorf("pattern: row %d col %d has invalid cell %q", r, c, line[c])
			}
		}
	}
	return g, nil
}
