package sdl

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/lifebench/gol"
	"uk.ac.bris.cs/lifebench/util"
)

// Run opens a window the size of the lattice and draws every completed
// generation until the simulation closes the events channel or the window
// is closed. Must run on the main OS thread.
func Run(p gol.Params, events <-chan gol.Event) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		panic(fmt.Sprintf("could not initialise SDL: %v", err))
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"Game of Life",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(p.Size), int32(p.Size),
		sdl.WINDOW_SHOWN)
	if err != nil {
		panic(fmt.Sprintf("could not create window: %v", err))
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		panic(fmt.Sprintf("could not get window surface: %v", err))
	}

	// The viewer keeps its own copy of the cell states so that CellsFlipped
	// events only need to carry the diff.
	alive := make([]bool, p.Size*p.Size)

	flip := func(cells []util.Cell) {
		for _, cell := range cells {
			alive[cell.Y*p.Size+cell.X] = !alive[cell.Y*p.Size+cell.X]
		}
	}

	render := func() {
		surface.FillRect(nil, 0)
		for y := 0; y < p.Size; y++ {
			for x := 0; x < p.Size; x++ {
				if alive[y*p.Size+x] {
					surface.Set(x, y, color.White)
				}
			}
		}
		window.UpdateSurface()
	}

	for {
		// keep the window responsive between turns
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			if _, ok := e.(*sdl.QuitEvent); ok {
				return
			}
		}

		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			switch e := event.(type) {
			case gol.CellsFlipped:
				flip(e.Cells)
			case gol.TurnComplete:
				render()
			case gol.FinalTurnComplete:
				render()
			case gol.AliveCellsCount:
				fmt.Println(e)
			case gol.StateChange:
				fmt.Println(e)
			}
		default:
			sdl.Delay(4)
		}
	}
}
