package driver

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// MCP3008 reads the speed/brightness potentiometer through a 10-bit SPI ADC.
type MCP3008 struct {
	port    spi.PortCloser
	conn    spi.Conn
	channel int
}

// OpenMCP3008 opens the ADC on the given SPI port and single-ended channel
// (0-7).
func OpenMCP3008(portName string, channel int) (*MCP3008, error) {
	if channel < 0 || channel > 7 {
		return nil, fmt.Errorf("mcp3008: channel %d out of range", channel)
	}
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("mcp3008: open %q: %w", portName, err)
	}
	conn, err := port.Connect(1350*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("mcp3008: connect: %w", err)
	}
	return &MCP3008{port: port, conn: conn, channel: channel}, nil
}

// Read returns the current raw reading (0-1023).
func (a *MCP3008) Read() (int, error) {
	// Start bit, then single-ended mode plus channel in the next byte.
	tx := []byte{0x01, byte(0x80 | a.channel<<4), 0x00}
	rx := make([]byte, 3)
	if err := a.conn.Tx(tx, rx); err != nil {
		return 0, fmt.Errorf("mcp3008: tx: %w", err)
	}
	return int(rx[1]&0x03)<<8 | int(rx[2]), nil
}

// Close releases the SPI port.
func (a *MCP3008) Close() error { return a.port.Close() }
