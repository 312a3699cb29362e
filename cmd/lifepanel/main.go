// lifepanel runs the panel against the terminal simulator.
package main

import (
	"context"
	"flag"
	"log"

	"lifepanel/internal/control"
	"lifepanel/internal/frontend"
	"lifepanel/internal/pattern"
)

func main() {
	cfg := control.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lib, err := pattern.NewLibrary()
	if err != nil {
		log.Fatal(err)
	}

	queue := control.NewStepQueue(16)
	term, err := frontend.NewTerm(queue)
	if err != nil {
		log.Fatal(err)
	}
	defer term.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-term.Done()
		cancel()
	}()

	loop := control.New(cfg, term, term, queue, lib)
	if err := loop.Run(ctx); err != nil {
		term.Close()
		log.Fatal(err)
	}
}
