// Package frontend provides desktop stand-ins for the physical panel so the
// control loop can be exercised without hardware.
package frontend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifepanel/internal/control"
	"lifepanel/internal/input"
	"lifepanel/internal/panel"
)

// tap length simulated for a single space-bar press.
const termTapDuration = 150 * time.Millisecond

// Term renders the four tiles as character cells and maps the keyboard onto
// the front-panel controls: arrows turn the encoder, space taps the button,
// 'h' latches it held, '+'/'-' sweep the potentiometer, 'q' quits. It
// implements panel.Display and control.InputSource.
type Term struct {
	screen tcell.Screen
	queue  *control.StepQueue

	mu           sync.Mutex
	frame        [panel.Tiles][panel.TileSize]uint8
	intensity    [panel.Tiles]int
	dark         [panel.Tiles]bool
	pressedUntil time.Time
	held         bool
	analog       int

	done chan struct{}
	once sync.Once
}

// NewTerm initializes the terminal and starts the key-poll goroutine.
func NewTerm(queue *control.StepQueue) (*Term, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()

	t := &Term{
		screen: s,
		queue:  queue,
		analog: input.AnalogMax / 2,
		done:   make(chan struct{}),
	}
	for i := range t.intensity {
		t.intensity[i] = 7
	}
	go t.pollKeys()
	t.redraw()
	return t, nil
}

// Done is closed when the user quits.
func (t *Term) Done() <-chan struct{} { return t.done }

// Close restores the terminal.
func (t *Term) Close() {
	t.once.Do(func() { close(t.done) })
	t.screen.Fini()
}

func (t *Term) pollKeys() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				t.once.Do(func() { close(t.done) })
				return
			case ev.Key() == tcell.KeyRight || ev.Key() == tcell.KeyUp:
				t.queue.Push(input.CW)
			case ev.Key() == tcell.KeyLeft || ev.Key() == tcell.KeyDown:
				t.queue.Push(input.CCW)
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				t.mu.Lock()
				t.pressedUntil = time.Now().Add(termTapDuration)
				t.mu.Unlock()
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'h' || ev.Rune() == 'H'):
				t.mu.Lock()
				t.held = !t.held
				t.mu.Unlock()
			case ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
				t.adjustAnalog(64)
			case ev.Key() == tcell.KeyRune && (ev.Rune() == '-' || ev.Rune() == '_'):
				t.adjustAnalog(-64)
			}
		}
	}
}

func (t *Term) adjustAnalog(delta int) {
	t.mu.Lock()
	t.analog += delta
	if t.analog < 0 {
		t.analog = 0
	}
	if t.analog > input.AnalogMax {
		t.analog = input.AnalogMax
	}
	t.mu.Unlock()
}

// Button reports the simulated raw switch level.
func (t *Term) Button() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held || time.Now().Before(t.pressedUntil)
}

// Analog reports the simulated potentiometer reading.
func (t *Term) Analog() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.analog
}

// SetRow implements panel.Display.
func (t *Term) SetRow(tile, row int, bits uint8) {
	t.mu.Lock()
	t.frame[tile][row] = bits
	t.mu.Unlock()
	t.redraw()
}

// SetIntensity implements panel.Display.
func (t *Term) SetIntensity(tile, level int) {
	t.mu.Lock()
	t.intensity[tile] = level
	t.mu.Unlock()
	t.redraw()
}

// Clear implements panel.Display.
func (t *Term) Clear(tile int) {
	t.mu.Lock()
	t.frame[tile] = [panel.TileSize]uint8{}
	t.mu.Unlock()
	t.redraw()
}

// Shutdown implements panel.Display.
func (t *Term) Shutdown(tile int, off bool) {
	t.mu.Lock()
	t.dark[tile] = off
	t.mu.Unlock()
	t.redraw()
}

func ledStyle(level int) tcell.Style {
	r := int32(95 + level*160/panel.MaxIntensity)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, 0, 0))
}

var offStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 60))

func (t *Term) redraw() {
	t.mu.Lock()
	defer t.mu.Unlock()

	const marginX, marginY = 2, 1
	for tile := 0; tile < panel.Tiles; tile++ {
		baseRow := (tile / 2) * panel.TileSize
		baseCol := (tile % 2) * panel.TileSize
		style := ledStyle(t.intensity[tile])
		for row := 0; row < panel.TileSize; row++ {
			bits := t.frame[tile][row]
			if t.dark[tile] {
				bits = 0
			}
			for col := 0; col < panel.TileSize; col++ {
				on := bits&(1<<(panel.TileSize-1-uint(col))) != 0
				x := marginX + 2*(baseCol+col)
				y := marginY + baseRow + row
				if on {
					t.screen.SetContent(x, y, '█', nil, style)
					t.screen.SetContent(x+1, y, '█', nil, style)
				} else {
					t.screen.SetContent(x, y, '·', nil, offStyle)
					t.screen.SetContent(x+1, y, ' ', nil, offStyle)
				}
			}
		}
	}

	help := "arrows: page  space: button  h: hold  +/-: knob  q: quit"
	for i, r := range help {
		t.screen.SetContent(marginX+i, marginY+2*panel.TileSize+1, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
}
