package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/runegrid/runegrid/core"
)

// Cell is one finished screen cell: exactly one glyph, one foreground and one
// background. By the time a cell leaves the compositor its colors are always
// concrete (a configured default or tcell.ColorReset), never unset.
type Cell struct {
	Glyph      rune
	Foreground tcell.Color
	Background tcell.Color
}

// Grid is the finished frame handed to the output collaborator: a dense
// width x height cell matrix.
type Grid struct {
	size  core.Dimensions
	cells []Cell
}

// NewGrid allocates a grid filled with the given blank cell.
func NewGrid(size core.Dimensions, blank Cell) *Grid {
	cells := make([]Cell, size.Width*size.Height)
	for i := range cells {
		cells[i] = blank
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Dimensions { return g.size }

// Cell returns the cell at the given screen position, or false when out of
// bounds.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.size.Contains(core.Point{X: x, Y: y}) {
		return Cell{}, false
	}
	return g.cells[y*g.size.Width+x], true
}

// Set writes a cell, silently dropping out-of-bounds positions.
func (g *Grid) Set(p core.Point, c Cell) {
	if !g.size.Contains(p) {
		return
	}
	g.cells[p.Y*g.size.Width+p.X] = c
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			fn(x, y, g.cells[y*g.size.Width+x])
		}
	}
}
