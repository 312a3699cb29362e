//go:build ebiten

package frontend

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifepanel/internal/control"
	"lifepanel/internal/input"
	"lifepanel/internal/panel"
)

// Window shows the panel in an ebiten window. Left/right turn the encoder,
// up/down sweep the potentiometer, and holding space holds the button (so
// the brightness mode is reachable with a real hold). It implements
// ebiten.Game, panel.Display and control.InputSource; the control loop runs
// on its own goroutine while ebiten owns the render thread.
type Window struct {
	queue *control.StepQueue
	scale int
	pixel *ebiten.Image

	mu        sync.Mutex
	frame     [panel.Tiles][panel.TileSize]uint8
	intensity [panel.Tiles]int
	dark      [panel.Tiles]bool
	button    bool
	analog    int
}

// NewWindow constructs the window frontend with the given pixel scale.
func NewWindow(queue *control.StepQueue, scale int) *Window {
	if scale <= 0 {
		scale = 24
	}
	w := &Window{queue: queue, scale: scale, analog: input.AnalogMax / 2}
	for i := range w.intensity {
		w.intensity[i] = 7
	}
	w.pixel = ebiten.NewImage(1, 1)
	w.pixel.Fill(color.White)
	return w
}

// Update handles per-frame input.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		w.queue.Push(input.CW)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		w.queue.Push(input.CCW)
	}

	delta := 0
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		delta = 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		delta = -8
	}

	w.mu.Lock()
	w.button = ebiten.IsKeyPressed(ebiten.KeySpace)
	w.analog += delta
	if w.analog < 0 {
		w.analog = 0
	}
	if w.analog > input.AnalogMax {
		w.analog = input.AnalogMax
	}
	w.mu.Unlock()
	return nil
}

// Draw renders the LED matrix.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w.mu.Lock()
	frame := w.frame
	intensity := w.intensity
	dark := w.dark
	w.mu.Unlock()

	for tile := 0; tile < panel.Tiles; tile++ {
		if dark[tile] {
			continue
		}
		glow := 0.25 + 0.75*float64(intensity[tile])/panel.MaxIntensity
		baseRow := (tile / 2) * panel.TileSize
		baseCol := (tile % 2) * panel.TileSize
		for row := 0; row < panel.TileSize; row++ {
			for col := 0; col < panel.TileSize; col++ {
				if frame[tile][row]&(1<<(panel.TileSize-1-uint(col))) == 0 {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(w.scale)-1, float64(w.scale)-1)
				op.GeoM.Translate(
					float64((baseCol+col)*w.scale),
					float64((baseRow+row)*w.scale),
				)
				op.ColorM.Scale(glow, 0.1*glow, 0.1*glow, 1)
				screen.DrawImage(w.pixel, op)
			}
		}
	}
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := 2 * panel.TileSize * w.scale
	return side, side
}

// Button reports the simulated raw switch level.
func (w *Window) Button() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.button
}

// Analog reports the simulated potentiometer reading.
func (w *Window) Analog() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.analog
}

// SetRow implements panel.Display.
func (w *Window) SetRow(tile, row int, bits uint8) {
	w.mu.Lock()
	w.frame[tile][row] = bits
	w.mu.Unlock()
}

// SetIntensity implements panel.Display.
func (w *Window) SetIntensity(tile, level int) {
	w.mu.Lock()
	w.intensity[tile] = level
	w.mu.Unlock()
}

// Clear implements panel.Display.
func (w *Window) Clear(tile int) {
	w.mu.Lock()
	w.frame[tile] = [panel.TileSize]uint8{}
	w.mu.Unlock()
}

// Shutdown implements panel.Display.
func (w *Window) Shutdown(tile int, off bool) {
	w.mu.Lock()
	w.dark[tile] = off
	w.mu.Unlock()
}
