// Package lattice holds one generation of a Game of Life world and the
// stepper that advances it to the next one.
package lattice

import (
	"errors"
	"fmt"

	"uk.ac.bris.cs/lifebench/util"
)

// Cell states. Any other value is rejected by Validate.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// ErrInvalidInput is returned when a lattice is not square, is empty, or
// holds a cell value other than 0 or 1.
var ErrInvalidInput = errors.New("invalid lattice")

// Lattice is a square grid of cells indexed [row][col].
type Lattice [][]uint8

// New - makes an all-dead lattice of the dimension specified
func New(n int) Lattice {
	grid := make(Lattice, n)
	for i := 0; i < n; i++ {
		grid[i] = make([]uint8, n)
	}
	return grid
}

// Cross - makes a lattice with a vertical and a horizontal line of alive
// cells crossing at the centre row and column
func Cross(n int) Lattice {
	grid := New(n)
	centre := n / 2
	for i := 0; i < n; i++ {
		grid[centre][i] = Alive
		grid[i][centre] = Alive
	}
	return grid
}

// Size returns the dimension of the lattice.
func (l Lattice) Size() int {
	return len(l)
}

// Validate checks that the lattice is non-empty, square and only holds 0s
// and 1s. Everything wrong with it reports ErrInvalidInput.
func (l Lattice) Validate() error {
	n := len(l)
	if n == 0 {
		return fmt.Errorf("%w: zero-size grid", ErrInvalidInput)
	}
	for y := range l {
		if len(l[y]) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidInput, y, len(l[y]), n)
		}
		for x := range l[y] {
			if l[y][x] > Alive {
				return fmt.Errorf("%w: cell (%d, %d) holds %d, want 0 or 1", ErrInvalidInput, y, x, l[y][x])
			}
		}
	}
	return nil
}

// Clone - when given a lattice will return a copy of it
// Means that callers can work byval rather than byref
func (l Lattice) Clone() Lattice {
	grid := make(Lattice, len(l))
	for i := range l {
		row := make([]uint8, len(l[i]))
		copy(row, l[i])
		grid[i] = row
	}
	return grid
}

// Equal reports whether both lattices hold exactly the same cells.
func (l Lattice) Equal(other Lattice) bool {
	if len(l) != len(other) {
		return false
	}
	for y := range l {
		if len(l[y]) != len(other[y]) {
			return false
		}
		for x := range l[y] {
			if l[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// CountAlive returns how many cells are alive.
func (l Lattice) CountAlive() int {
	count := 0
	for y := range l {
		for x := range l[y] {
			if l[y][x] == Alive {
				count++
			}
		}
	}
	return count
}

// AliveCells returns the coordinates of every alive cell.
func (l Lattice) AliveCells() []util.Cell {
	var cells []util.Cell
	for y := range l {
		for x := range l[y] {
			if l[y][x] == Alive {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}
