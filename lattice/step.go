package lattice

import "sync"

// Boundary selects how neighbour lookups past the edge of the grid behave.
type Boundary int

const (
	// Bounded treats neighbours outside the grid as dead.
	Bounded Boundary = iota
	// Toroidal wraps neighbour lookups around to the opposite edge.
	Toroidal
)

// Stepper advances a lattice one generation at a time. The zero value steps
// with the Bounded edge policy.
type Stepper struct {
	boundary Boundary
}

// NewStepper returns a stepper using the given edge policy.
func NewStepper(b Boundary) *Stepper {
	return &Stepper{boundary: b}
}

// Advance computes the next generation of the lattice. Every output cell is
// read from the input only, so the whole grid updates simultaneously. The
// input is validated first and never written to; the result is always a
// fresh lattice of the same dimensions.
func (s *Stepper) Advance(world Lattice) (Lattice, error) {
	if err := world.Validate(); err != nil {
		return nil, err
	}
	next := New(len(world))
	s.stepRows(0, len(world), world, next)
	return next, nil
}

// AdvanceParallel is Advance with the rows split across the given number of
// goroutines. Each worker reads the shared frozen input and writes only its
// own band of output rows, so the result is identical to Advance.
func (s *Stepper) AdvanceParallel(world Lattice, threads int) (Lattice, error) {
	if err := world.Validate(); err != nil {
		return nil, err
	}
	n := len(world)
	if threads < 1 {
		threads = 1
	}
	if threads > n {
		threads = n
	}

	next := New(n)
	height := n / threads

	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		startY := height * i
		endY := height * (i + 1)
		if i == threads-1 {
			endY = n
			// last worker takes the rows that don't divide evenly
		}
		wg.Add(1)
		go func(startY, endY int) {
			defer wg.Done()
			s.stepRows(startY, endY, world, next)
		}(startY, endY)
	}
	wg.Wait()

	return next, nil
}

// stepRows applies the update rule to rows [startY, endY), reading from
// world and writing into next.
func (s *Stepper) stepRows(startY, endY int, world, next Lattice) {
	for y := startY; y < endY; y++ {
		for x := range world[y] {
			alive := s.countAliveNeighbours(world, y, x)
			if world[y][x] == Alive {
				if alive == 2 || alive == 3 {
					next[y][x] = Alive
				} else {
					next[y][x] = Dead
				}
			} else {
				if alive == 3 {
					next[y][x] = Alive
				} else {
					next[y][x] = Dead
				}
			}
		}
	}
}

func (s *Stepper) countAliveNeighbours(world Lattice, y, x int) int {
	n := len(world)
	alive := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			ny := y + dy
			nx := x + dx
			if s.boundary == Toroidal {
				ny = (ny + n) % n
				nx = (nx + n) % n
			} else if ny < 0 || ny >= n || nx < 0 || nx >= n {
				// off the edge counts as dead
				continue
			}
			if world[ny][nx] == Alive {
				alive++
			}
		}
	}
	return alive
}

// makeImmutableLattice wraps the world in a getter so the kernel below can
// only read it.
func makeImmutableLattice(world Lattice) func(y, x int) uint8 {
	return func(y, x int) uint8 {
		return world[y][x]
	}
}

// stepRowsFunc is stepRows with every cell read going through a getter
// closure instead of indexing the slices directly. It produces the same
// output as stepRows; the benchmarks keep it around to measure what the
// extra indirection costs per generation.
func (s *Stepper) stepRowsFunc(startY, endY, n int, world func(y, x int) uint8, next Lattice) {
	for y := startY; y < endY; y++ {
		for x := 0; x < n; x++ {
			alive := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					ny := y + dy
					nx := x + dx
					if s.boundary == Toroidal {
						ny = (ny + n) % n
						nx = (nx + n) % n
					} else if ny < 0 || ny >= n || nx < 0 || nx >= n {
						continue
					}
					if world(ny, nx) == Alive {
						alive++
					}
				}
			}
			if world(y, x) == Alive {
				if alive == 2 || alive == 3 {
					next[y][x] = Alive
				} else {
					next[y][x] = Dead
				}
			} else {
				if alive == 3 {
					next[y][x] = Alive
				} else {
					next[y][x] = Dead
				}
			}
		}
	}
}
