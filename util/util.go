package util

import "fmt"

// Cell is one coordinate on the lattice. X is the column, Y is the row.
type Cell struct {
	X, Y int
}

func (cell Cell) String() string {
	return fmt.Sprintf("(%d, %d)", cell.X, cell.Y)
}
