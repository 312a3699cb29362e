package control

import (
	"context"
	"time"

	"lifepanel/internal/core"
	"lifepanel/internal/input"
	"lifepanel/internal/panel"
	"lifepanel/internal/pattern"
	"lifepanel/pkg/bitgrid"
	pkgcore "lifepanel/pkg/core"
	"lifepanel/pkg/life"
)

// pollInterval bounds how hot the scheduler spins between ticks.
const pollInterval = 2 * time.Millisecond

// InputSource exposes the level-sampled inputs. Encoder detents arrive
// separately through the StepQueue because they are edge events.
type InputSource interface {
	// Button returns the current raw switch level.
	Button() bool
	// Analog returns the current raw potentiometer reading (0-1023).
	Analog() int
}

// Loop is the fixed-period scheduler. It owns the whole simulation context
// (active grid, seed, selector, generation counter) as explicit state; no
// component keeps hidden globals. It is the single writer of the active grid
// and invokes the renderer synchronously, so only the encoder queue crosses
// goroutines.
type Loop struct {
	cfg   *Config
	disp  panel.Display
	rend  *panel.Renderer
	queue *StepQueue
	in    InputSource
	btn   *input.Button
	lib   *pattern.Library
	ctrl  *Controller
	det   *life.Detector
	timer *core.FixedStep

	active     bitgrid.Grid
	generation uint64

	now func() time.Time
}

// New wires the scheduler to its collaborators.
func New(cfg *Config, disp panel.Display, in InputSource, queue *StepQueue, lib *pattern.Library) *Loop {
	l := &Loop{
		cfg:   cfg,
		disp:  disp,
		rend:  panel.NewRenderer(disp),
		queue: queue,
		in:    in,
		btn:   input.NewButton(cfg.Debounce),
		lib:   lib,
		det:   life.NewDetector(),
		timer: core.NewFixedStep(cfg.MaxPeriod),
		now:   time.Now,
	}
	rng := pkgcore.NewRNG(cfg.Seed).Source()
	l.ctrl = NewController(lib, rng, l.pageChanged)
	return l
}

// Controller exposes the page state machine, mainly for frontends that want
// to show the current selection.
func (l *Loop) Controller() *Controller { return l.ctrl }

// Renderer exposes the renderer so callers can adjust pacing.
func (l *Loop) Renderer() *panel.Renderer { return l.rend }

func (l *Loop) pageChanged(page int, g bitgrid.Grid) {
	l.active = g
	l.generation = 0
	l.det.Reset(g)
	l.rend.Instant(g)
}

// Boot plays the ripple reveal over the first catalog entry, then resolves
// the boot page with a full-frame render.
func (l *Loop) Boot() error {
	for tile := 0; tile < panel.Tiles; tile++ {
		l.disp.Shutdown(tile, false)
		l.disp.Clear(tile)
	}
	l.rend.Ripple(l.lib.Fixed(0))
	return l.ctrl.Dispatch()
}

// Iterate runs one scheduler pass: drain encoder detents, sample the button,
// remap the potentiometer, and advance the automaton when the tick fires.
func (l *Loop) Iterate() error {
	for _, d := range l.queue.Drain() {
		if err := l.ctrl.OnStep(d); err != nil {
			return err
		}
	}

	l.btn.Sample(l.in.Button())
	if l.btn.JustPressed() {
		if err := l.ctrl.OnButtonPressed(); err != nil {
			return err
		}
	}

	raw := l.in.Analog()
	if l.btn.HeldFor(l.cfg.HoldThreshold) {
		level := input.Intensity(raw)
		for tile := 0; tile < panel.Tiles; tile++ {
			l.disp.SetIntensity(tile, level)
		}
	} else {
		l.timer.SetPeriod(input.Period(raw, l.cfg.MinPeriod, l.cfg.MaxPeriod))
	}

	if l.timer.ShouldStep() {
		l.active = life.Step(l.active)
		l.generation++
		l.det.Observe(l.active, l.generation)
		l.rend.Scan(l.active, l.timer.Period())
	}

	if l.det.Settled() && l.now().Sub(l.det.SettledAt()) >= l.cfg.SettleTimeout {
		return l.ctrl.Reenter()
	}
	return nil
}

// Run boots the panel and drives the scheduler until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Boot(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := l.Iterate(); err != nil {
			return err
		}
		time.Sleep(pollInterval)
	}
}
