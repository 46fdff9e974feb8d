package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifebench/util"
)

// Event represents any notification emitted by the simulation.
type Event interface {
	// String returns a string representation of the event based on its state
	String() string
}

// State represents a change in the state of execution.
type State int

const (
	Executing State = iota
	Quitting
)

// CellsFlipped is sent after every turn with all cells that changed state.
// The cells sent for turn 0 are the starting pattern.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

// TurnComplete is sent every time a full turn of the lattice has been
// computed.
type TurnComplete struct {
	CompletedTurns int
}

// AliveCellsCount is sent roughly every 2 seconds with how many cells are
// currently alive.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// FinalTurnComplete is sent once all turns have been processed, with the
// coordinates of every cell still alive.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

// StateChange is sent every time the execution state changes.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

func (state State) String() string {
	switch state {
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

func (event CellsFlipped) String() string {
	return fmt.Sprintf("Completed Turns %-8v %v cells flipped", event.CompletedTurns, len(event.Cells))
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("Completed Turns %-8v Turn Complete", event.CompletedTurns)
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Completed Turns %-8v Alive Cells %v", event.CompletedTurns, event.CellsCount)
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Completed Turns %-8v Final Turn Complete", event.CompletedTurns)
}

func (event StateChange) String() string {
	return fmt.Sprintf("Completed Turns %-8v %v", event.CompletedTurns, event.NewState)
}
