package pattern

// The fixed catalog entries are kept as ASCII art and parsed on startup
// rather than hand-typed row literals, so the data stays legible.

// glider: drifts one cell down-right every four generations.
var gliderArt = []string{
	"................",
	"..#.............",
	"...#............",
	".###............",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
}

// pulsar: the classic period-3 oscillator, centered so its widest phase
// stays clear of its own wraparound image.
var pulsarArt = []string{
	"................",
	"................",
	"....###...###...",
	"................",
	"..#....#.#....#.",
	"..#....#.#....#.",
	"..#....#.#....#.",
	"....###...###...",
	"................",
	"....###...###...",
	"..#....#.#....#.",
	"..#....#.#....#.",
	"..#....#.#....#.",
	"................",
	"....###...###...",
	"................",
}

// lightweight spaceship: travels two cells left every four generations and
// loops the torus forever.
var lwssArt = []string{
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
	"......#..#......",
	".....#..........",
	".....#...#......",
	".....####.......",
	"................",
	"................",
	"................",
	"................",
	"................",
	"................",
}

var catalog = [][]string{gliderArt, pulsarArt, lwssArt}
