//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The hardware build of lifepanel only targets linux.")
	os.Exit(2)
}
