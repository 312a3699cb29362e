package input

// Direction is a decoded rotary-encoder event.
type Direction int

const (
	// None means the transition did not complete a detent.
	None Direction = iota
	// CW is one detent clockwise.
	CW
	// CCW is one detent counterclockwise.
	CCW
)

// quarterSteps maps (previous state << 2 | current state) of the two encoder
// lines to the signed quarter-step it represents. Invalid transitions (both
// lines flipping at once, or no change) contribute zero, which silently
// absorbs contact bounce.
var quarterSteps = [16]int8{
	0, -1, 1, 0,
	1, 0, 0, -1,
	-1, 0, 0, 1,
	0, 1, -1, 0,
}

// Encoder decodes raw two-line transitions into detent steps. One mechanical
// detent is four consistent quarter-steps; partial or reversed motion cancels
// out before a step is emitted.
type Encoder struct {
	prev  uint8
	accum int8
}

// NewEncoder starts the decoder from the given idle line levels.
func NewEncoder(a, b bool) *Encoder {
	return &Encoder{prev: lineState(a, b)}
}

// Transition feeds the current levels of both lines and returns the completed
// detent, if any.
func (e *Encoder) Transition(a, b bool) Direction {
	state := lineState(a, b)
	e.accum += quarterSteps[e.prev<<2|state]
	e.prev = state

	switch {
	case e.accum >= 4:
		e.accum = 0
		return CW
	case e.accum <= -4:
		e.accum = 0
		return CCW
	default:
		return None
	}
}

func lineState(a, b bool) uint8 {
	var s uint8
	if a {
		s |= 2
	}
	if b {
		s |= 1
	}
	return s
}
