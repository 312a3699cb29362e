//go:build linux

// lifepanel-hw runs the panel on real hardware: a chain of four MAX7219
// tiles on SPI, an MCP3008 for the potentiometer, and GPIO lines for the
// rotary encoder and push button.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"periph.io/x/host/v3"

	"lifepanel/internal/control"
	"lifepanel/internal/driver"
	"lifepanel/internal/pattern"
)

func main() {
	cfg := control.NewConfig()
	cfg.Bind(flag.CommandLine)
	var (
		displayPort = flag.String("display-spi", "SPI0.0", "SPI port of the MAX7219 chain")
		adcPort     = flag.String("adc-spi", "SPI0.1", "SPI port of the MCP3008")
		adcChannel  = flag.Int("adc-channel", 0, "MCP3008 channel of the potentiometer")
		gpioChip    = flag.String("gpio-chip", "gpiochip0", "GPIO chip holding the input lines")
		pinA        = flag.Int("pin-a", 17, "encoder line A")
		pinB        = flag.Int("pin-b", 27, "encoder line B")
		pinButton   = flag.Int("pin-button", 22, "push button line")
	)
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	lib, err := pattern.NewLibrary()
	if err != nil {
		log.Fatal(err)
	}

	disp, err := driver.OpenMAX7219(*displayPort)
	if err != nil {
		log.Fatal(err)
	}
	defer disp.Close()

	adc, err := driver.OpenMCP3008(*adcPort, *adcChannel)
	if err != nil {
		log.Fatal(err)
	}
	defer adc.Close()

	queue := control.NewStepQueue(16)
	gpio, err := driver.OpenGPIOInputs(*gpioChip, *pinA, *pinB, *pinButton, queue)
	if err != nil {
		log.Fatal(err)
	}
	defer gpio.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in := &hardwareInput{gpio: gpio, adc: adc}
	loop := control.New(cfg, disp, in, queue, lib)
	if err := loop.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

// hardwareInput bundles the polled inputs behind control.InputSource. ADC
// read failures fall back to the last good reading so a flaky wire cannot
// stall the loop.
type hardwareInput struct {
	gpio *driver.GPIOInputs
	adc  *driver.MCP3008
	last int
}

func (h *hardwareInput) Button() bool { return h.gpio.Button() }

func (h *hardwareInput) Analog() int {
	raw, err := h.adc.Read()
	if err != nil {
		log.Printf("adc: %v", err)
		return h.last
	}
	h.last = raw
	return raw
}
