//go:build linux

package driver

import (
	"fmt"
	"log"
	"sync"

	"github.com/warthog618/go-gpiocdev"

	"lifepanel/internal/control"
	"lifepanel/internal/input"
)

// GPIOInputs owns the rotary-encoder and push-button lines. Encoder edges
// arrive on gpiocdev's event goroutines; each edge re-reads both lines,
// pushes the transition through the quadrature decoder under a mutex (the
// two lines share decoder state) and enqueues any completed detent. The
// button level is polled by the main loop's debouncer.
type GPIOInputs struct {
	lineA  *gpiocdev.Line
	lineB  *gpiocdev.Line
	button *gpiocdev.Line

	mu    sync.Mutex
	enc   *input.Encoder
	queue *control.StepQueue
}

// OpenGPIOInputs requests the three lines from the given chip. The encoder
// lines and the button are wired active-low with internal pull-ups.
func OpenGPIOInputs(chip string, pinA, pinB, pinButton int, queue *control.StepQueue) (*GPIOInputs, error) {
	// The decoder must exist before the event handlers are registered; an
	// edge can fire while the lines are still being requested.
	g := &GPIOInputs{queue: queue, enc: input.NewEncoder(false, false)}

	var err error
	g.lineA, err = gpiocdev.RequestLine(chip, pinA,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(g.onEdge))
	if err != nil {
		return nil, fmt.Errorf("gpio: encoder line A (%d): %w", pinA, err)
	}
	g.lineB, err = gpiocdev.RequestLine(chip, pinB,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(g.onEdge))
	if err != nil {
		g.lineA.Close()
		return nil, fmt.Errorf("gpio: encoder line B (%d): %w", pinB, err)
	}
	g.button, err = gpiocdev.RequestLine(chip, pinButton,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp)
	if err != nil {
		g.lineA.Close()
		g.lineB.Close()
		return nil, fmt.Errorf("gpio: button line (%d): %w", pinButton, err)
	}

	// Re-sync the decoder to the real idle levels.
	a, b := g.levels()
	g.mu.Lock()
	g.enc = input.NewEncoder(a, b)
	g.mu.Unlock()
	return g, nil
}

func (g *GPIOInputs) levels() (bool, bool) {
	va, err := g.lineA.Value()
	if err != nil {
		log.Printf("gpio: read line A: %v", err)
	}
	vb, err := g.lineB.Value()
	if err != nil {
		log.Printf("gpio: read line B: %v", err)
	}
	// Pull-ups make idle high; treat low as asserted.
	return va == 0, vb == 0
}

func (g *GPIOInputs) onEdge(gpiocdev.LineEvent) {
	a, b := g.levels()
	g.mu.Lock()
	d := g.enc.Transition(a, b)
	g.mu.Unlock()
	g.queue.Push(d)
}

// Button returns the debounce-ready raw button level (true = pressed).
func (g *GPIOInputs) Button() bool {
	v, err := g.button.Value()
	if err != nil {
		log.Printf("gpio: read button: %v", err)
		return false
	}
	return v == 0
}

// Close releases all three lines.
func (g *GPIOInputs) Close() error {
	g.lineA.Close()
	g.lineB.Close()
	return g.button.Close()
}
