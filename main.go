package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"uk.ac.bris.cs/lifebench/gol"
	"uk.ac.bris.cs/lifebench/sdl"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	runtime.LockOSThread()
	var params gol.Params

	flag.IntVar(
		&params.Threads,
		"t",
		1,
		"Specify the number of worker threads to use. Defaults to 1.")

	flag.IntVar(
		&params.Size,
		"size",
		300,
		"Specify the width and height of the lattice. Defaults to 300.")

	flag.IntVar(
		&params.Turns,
		"turns",
		100,
		"Specify the number of turns to process. Defaults to 100.")

	flag.BoolVar(
		&params.Torus,
		"torus",
		false,
		"Wrap neighbour lookups around the lattice edges instead of treating them as dead.")

	noVis := flag.Bool(
		"noVis",
		false,
		"Disables the SDL window, so there is no visualisation during the run.")

	flag.Parse()

	if params.Size < 1 {
		fmt.Println("size must be at least 1")
		os.Exit(1)
	}

	fmt.Println("Threads:", params.Threads)
	fmt.Println("Size:", params.Size)
	fmt.Println("Turns:", params.Turns)

	events := make(chan gol.Event, 1000)

	start := time.Now()
	go gol.Run(params, events)
	if !(*noVis) {
		sdl.Run(params, events)
	} else {
		complete := false
		for !complete {
			event := <-events
			switch event.(type) {
			case gol.FinalTurnComplete:
				complete = true
			}
		}
	}
	elapsed := time.Since(start)

	fmt.Println("Total:", elapsed)
	if params.Turns > 0 {
		fmt.Println("Per generation:", elapsed/time.Duration(params.Turns))
	}
}
