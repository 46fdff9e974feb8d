package gol

// Params provides the details of how to run the Game of Life.
type Params struct {
	Turns   int
	Threads int
	Size    int
	Torus   bool
}

// Run starts the processing of Game of Life and reports progress on the
// events channel. The channel is closed once the final turn is done.
func Run(p Params, events chan<- Event) {
	distributor(p, events)
}
