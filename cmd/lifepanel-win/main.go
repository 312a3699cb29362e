//go:build ebiten

// lifepanel-win runs the panel in a desktop window.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifepanel/internal/control"
	"lifepanel/internal/frontend"
	"lifepanel/internal/pattern"
)

func main() {
	cfg := control.NewConfig()
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 24, "pixel scale multiplier")
	flag.Parse()

	lib, err := pattern.NewLibrary()
	if err != nil {
		log.Fatal(err)
	}

	queue := control.NewStepQueue(16)
	win := frontend.NewWindow(queue, *scale)
	loop := control.New(cfg, win, win, queue, lib)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() {
		errc <- loop.Run(ctx)
	}()

	side := 2 * 8 * *scale
	ebiten.SetWindowTitle("lifepanel")
	ebiten.SetWindowSize(side, side)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	cancel()
	if err := <-errc; err != nil {
		log.Fatal(err)
	}
}
