package gol

import (
	"testing"

	"uk.ac.bris.cs/lifebench/lattice"
	"uk.ac.bris.cs/lifebench/util"
)

// expectedFinal replays the simulation with the lattice package directly.
func expectedFinal(t *testing.T, p Params) lattice.Lattice {
	t.Helper()
	boundary := lattice.Bounded
	if p.Torus {
		boundary = lattice.Toroidal
	}
	s := lattice.NewStepper(boundary)
	world := lattice.Cross(p.Size)
	for i := 0; i < p.Turns; i++ {
		next, err := s.Advance(world)
		if err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		world = next
	}
	return world
}

func cellSet(cells []util.Cell) map[util.Cell]bool {
	set := make(map[util.Cell]bool, len(cells))
	for _, cell := range cells {
		set[cell] = true
	}
	return set
}

func TestRun(t *testing.T) {
	for _, p := range []Params{
		{Turns: 5, Threads: 1, Size: 16},
		{Turns: 5, Threads: 3, Size: 17},
		{Turns: 4, Threads: 2, Size: 12, Torus: true},
		{Turns: 0, Threads: 1, Size: 8},
	} {
		events := make(chan Event, 1000)
		go Run(p, events)

		var final *FinalTurnComplete
		turnsSeen := 0
		flipped := map[util.Cell]bool{}

		for event := range events {
			switch e := event.(type) {
			case TurnComplete:
				if e.CompletedTurns != turnsSeen {
					t.Errorf("%+v: TurnComplete for turn %d, expected %d", p, e.CompletedTurns, turnsSeen)
				}
				turnsSeen++
			case CellsFlipped:
				for _, cell := range e.Cells {
					if flipped[cell] {
						delete(flipped, cell)
					} else {
						flipped[cell] = true
					}
				}
			case FinalTurnComplete:
				f := e
				final = &f
			}
		}

		if final == nil {
			t.Fatalf("%+v: no FinalTurnComplete received", p)
		}
		if final.CompletedTurns != p.Turns {
			t.Errorf("%+v: final turn = %d, want %d", p, final.CompletedTurns, p.Turns)
		}
		if turnsSeen != p.Turns+1 {
			// turn 0 announces the starting pattern
			t.Errorf("%+v: saw %d TurnComplete events, want %d", p, turnsSeen, p.Turns+1)
		}

		want := cellSet(expectedFinal(t, p).AliveCells())
		got := cellSet(final.Alive)
		if len(got) != len(want) {
			t.Errorf("%+v: %d alive cells reported, want %d", p, len(got), len(want))
		}
		for cell := range want {
			if !got[cell] {
				t.Errorf("%+v: cell %v missing from final alive set", p, cell)
			}
		}

		// replaying every CellsFlipped diff from an empty board must land on
		// the same final state
		if len(flipped) != len(want) {
			t.Errorf("%+v: flip replay has %d alive cells, want %d", p, len(flipped), len(want))
		}
		for cell := range want {
			if !flipped[cell] {
				t.Errorf("%+v: cell %v missing from flip replay", p, cell)
			}
		}
	}
}
