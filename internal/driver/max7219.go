// Package driver holds the hardware collaborators: the MAX7219 LED tile
// chain, the MCP3008 ADC for the speed/brightness potentiometer, and the GPIO
// lines for the rotary encoder and push button.
package driver

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"lifepanel/internal/panel"
)

// MAX7219 register map.
const (
	regNoop        = 0x00
	regDigit0      = 0x01
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// MAX7219 drives a daisy chain of four 8×8 LED tiles over a single SPI port.
// Each register write clocks one 16-bit frame per chip through the chain;
// tiles that are not addressed receive no-op frames. It implements
// panel.Display.
type MAX7219 struct {
	port spi.PortCloser
	conn spi.Conn
	buf  []byte
}

// OpenMAX7219 opens the SPI port, wakes the chain and blanks every tile.
// portName is a periph.io SPI port like "SPI0.0" or "/dev/spidev0.0".
func OpenMAX7219(portName string) (*MAX7219, error) {
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("max7219: open %q: %w", portName, err)
	}
	conn, err := port.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("max7219: connect: %w", err)
	}

	m := &MAX7219{port: port, conn: conn, buf: make([]byte, 2*panel.Tiles)}
	init := []struct{ reg, data byte }{
		{regDisplayTest, 0x00},
		{regScanLimit, 0x07},
		{regDecodeMode, 0x00},
		{regShutdown, 0x01}, // 1 = normal operation
		{regIntensity, 0x07},
	}
	for _, step := range init {
		for tile := 0; tile < panel.Tiles; tile++ {
			if err := m.write(tile, step.reg, step.data); err != nil {
				port.Close()
				return nil, err
			}
		}
	}
	for tile := 0; tile < panel.Tiles; tile++ {
		m.Clear(tile)
	}
	return m, nil
}

// write latches one register frame into a single chip. The first frame
// shifted out lands on the far end of the chain, so the buffer is filled in
// reverse tile order.
func (m *MAX7219) write(tile int, reg, data byte) error {
	for i := range m.buf {
		m.buf[i] = regNoop
	}
	pos := 2 * (panel.Tiles - 1 - tile)
	m.buf[pos] = reg
	m.buf[pos+1] = data
	if err := m.conn.Tx(m.buf, nil); err != nil {
		return fmt.Errorf("max7219: tx tile %d reg %#02x: %w", tile, reg, err)
	}
	return nil
}

// SetRow writes one 8-bit row bitmap to a tile.
func (m *MAX7219) SetRow(tile, row int, bits uint8) {
	if err := m.write(tile, byte(regDigit0+row), bits); err != nil {
		log.Printf("%v", err)
	}
}

// SetIntensity sets a tile's brightness (0-15).
func (m *MAX7219) SetIntensity(tile, level int) {
	if level < 0 {
		level = 0
	}
	if level > panel.MaxIntensity {
		level = panel.MaxIntensity
	}
	if err := m.write(tile, regIntensity, byte(level)); err != nil {
		log.Printf("%v", err)
	}
}

// Clear blanks every row of a tile.
func (m *MAX7219) Clear(tile int) {
	for row := 0; row < panel.TileSize; row++ {
		m.SetRow(tile, row, 0)
	}
}

// Shutdown puts a tile into or out of low-power shutdown.
func (m *MAX7219) Shutdown(tile int, off bool) {
	data := byte(0x01)
	if off {
		data = 0x00
	}
	if err := m.write(tile, regShutdown, data); err != nil {
		log.Printf("%v", err)
	}
}

// Close blanks the chain and releases the SPI port.
func (m *MAX7219) Close() error {
	for tile := 0; tile < panel.Tiles; tile++ {
		m.Shutdown(tile, true)
	}
	return m.port.Close()
}
