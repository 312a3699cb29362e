package panel

import "lifepanel/pkg/bitgrid"

// Physical arrangement: four 8×8 tiles in a 2×2 square compose the logical
// 16×16 surface. Tile index = 2*(row half) + (col half), so tile 0 is the
// top-left quadrant and tile 3 the bottom-right.
const (
	Tiles    = 4
	TileSize = 8

	// MaxIntensity is the brightest level the display accepts.
	MaxIntensity = 15
)

// Display is the narrow interface to the physical (or simulated) LED panel.
// Row bitmaps are 8 bits wide with the MSB on the tile's leftmost column.
// Hardware write failures are the collaborator's problem, not the core's.
type Display interface {
	SetRow(tile, row int, bits uint8)
	SetIntensity(tile, level int)
	Clear(tile int)
	Shutdown(tile int, off bool)
}

// TileFor returns the tile index covering logical cell (row, col).
func TileFor(row, col int) int {
	return 2*(row/TileSize) + col/TileSize
}

// TileRow extracts the 8-bit row bitmap for one row of one tile from the
// logical grid.
func TileRow(g bitgrid.Grid, tile, row int) uint8 {
	bits := g.Row((tile/2)*TileSize + row)
	if tile%2 == 0 {
		return uint8(bits >> 8)
	}
	return uint8(bits)
}
