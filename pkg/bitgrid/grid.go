package bitgrid

import "math/rand/v2"

// Size is the side length of the panel grid in cells.
const Size = 16

// Grid is a toroidal Size×Size bit matrix with packed-row storage. Bit 15 of
// each row is column 0. Grid is a value type: assignment copies the whole
// board, so callers never alias each other's state.
type Grid struct {
	rows [Size]uint16
}

// New returns a grid with every cell cleared.
func New() Grid { return Grid{} }

func wrap(i int) int { return (i%Size + Size) % Size }

func mask(c int) uint16 { return 1 << (Size - 1 - uint(c)) }

// Get reports whether the cell at (row, col) is alive. Out-of-range indices
// wrap toroidally, which keeps neighbor lookups branch-free.
func (g Grid) Get(row, col int) bool {
	return g.rows[wrap(row)]&mask(wrap(col)) != 0
}

// Set writes the cell at (row, col), wrapping indices like Get.
func (g *Grid) Set(row, col int, alive bool) {
	if alive {
		g.rows[wrap(row)] |= mask(wrap(col))
		return
	}
	g.rows[wrap(row)] &^= mask(wrap(col))
}

// Row returns the packed bits of one row (bit 15 = column 0).
func (g Grid) Row(row int) uint16 { return g.rows[wrap(row)] }

// SetBits replaces one row with the provided packed bits.
func (g *Grid) SetBits(row int, bits uint16) { g.rows[wrap(row)] = bits }

// Clear kills every cell.
func (g *Grid) Clear() { g.rows = [Size]uint16{} }

// Equal reports whether both grids hold identical cells.
func (g Grid) Equal(o Grid) bool { return g.rows == o.rows }

// Mask returns the bitwise AND of g with m, leaving g untouched.
func (g Grid) Mask(m Grid) Grid {
	var out Grid
	for r := 0; r < Size; r++ {
		out.rows[r] = g.rows[r] & m.rows[r]
	}
	return out
}

// Population counts the live cells.
func (g Grid) Population() int {
	n := 0
	for r := 0; r < Size; r++ {
		for bits := g.rows[r]; bits != 0; bits &= bits - 1 {
			n++
		}
	}
	return n
}

// Random fills a fresh grid with a 50% cell density drawn from r.
func Random(r *rand.Rand) Grid {
	var g Grid
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if r.IntN(2) == 1 {
				g.rows[row] |= mask(col)
			}
		}
	}
	return g
}
