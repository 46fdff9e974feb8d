package main

import (
	"testing"

	"uk.ac.bris.cs/lifebench/gol"
)

func BenchmarkGol(b *testing.B) {
	p := gol.Params{
		Turns:   100,
		Threads: 4,
		Size:    300,
	}

	for i := 0; i < b.N; i++ {
		events := make(chan gol.Event, 1000)
		go gol.Run(p, events)

		// drain everything until the distributor closes the channel
		for range events {
		}
	}
}
