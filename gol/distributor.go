package gol

import (
	"fmt"
	"time"

	"uk.ac.bris.cs/lifebench/lattice"
	"uk.ac.bris.cs/lifebench/util"
)

// flippedCells - returns the cells that changed state between two generations
func flippedCells(world, newWorld lattice.Lattice) []util.Cell {
	var flipped []util.Cell
	for y := range world {
		for x := range world[y] {
			if newWorld[y][x] != world[y][x] {
				flipped = append(flipped, util.Cell{X: x, Y: y})
			}
		}
	}
	return flipped
}

// distributor runs every turn of the simulation and interacts with the SDL
// goroutine through the events channel.
func distributor(p Params, events chan<- Event) {
	world := lattice.Cross(p.Size)

	boundary := lattice.Bounded
	if p.Torus {
		boundary = lattice.Toroidal
	}
	stepper := lattice.NewStepper(boundary)

	// SDL needs the starting cells before the first turn
	events <- CellsFlipped{0, world.AliveCells()}
	events <- TurnComplete{0}
	events <- StateChange{0, Executing}

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for turn := 1; turn <= p.Turns; turn++ {
		var newWorld lattice.Lattice
		var err error
		if p.Threads > 1 {
			newWorld, err = stepper.AdvanceParallel(world, p.Threads)
		} else {
			newWorld, err = stepper.Advance(world)
		}
		if err != nil {
			panic(fmt.Sprintf("advance failed on turn %v: %v", turn, err))
		}

		events <- CellsFlipped{turn, flippedCells(world, newWorld)}
		events <- TurnComplete{turn}
		world = newWorld

		select {
		case <-ticker.C:
			events <- AliveCellsCount{turn, world.CountAlive()}
		default:
		}
	}

	events <- FinalTurnComplete{p.Turns, world.AliveCells()}
	events <- StateChange{p.Turns, Quitting}

	// Close the channel to stop the SDL goroutine gracefully. Removing may cause deadlock.
	close(events)
}
