package control

import "lifepanel/internal/input"

// StepQueue carries decoded encoder detents from the edge-handler goroutine
// to the main loop. Producers never block: when the queue is full the event
// is dropped, which at human knob speeds is unreachable. The main loop is the
// only consumer, so `page` is never touched from two goroutines.
type StepQueue struct {
	ch chan input.Direction
}

// NewStepQueue allocates a queue holding up to n pending detents.
func NewStepQueue(n int) *StepQueue {
	if n <= 0 {
		n = 16
	}
	return &StepQueue{ch: make(chan input.Direction, n)}
}

// Push enqueues a detent without blocking.
func (q *StepQueue) Push(d input.Direction) {
	if d == input.None {
		return
	}
	select {
	case q.ch <- d:
	default:
	}
}

// Drain returns every pending detent in arrival order.
func (q *StepQueue) Drain() []input.Direction {
	var out []input.Direction
	for {
		select {
		case d := <-q.ch:
			out = append(out, d)
		default:
			return out
		}
	}
}
