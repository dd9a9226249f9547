// Package patterns provides barrier generators for the editor and the
// headless solver. Each generator registers itself with the registry.
package patterns

import (
	"github.com/vovakirdan/tui-astar/internal/grid"
)

// clearBarriers removes every barrier and search mark, keeping Start and End.
func clearBarriers(g *grid.Grid) {
	g.ClearSearch()
	for _, c := range g.Coords() {
		if g.StateAt(c) == grid.Barrier {
			//nolint:errcheck // c comes from the grid
			g.SetState(c, grid.Empty)
		}
	}
}

// block places a barrier on c unless c is out of bounds or an endpoint.
func block(g *grid.Grid, c grid.Coord) {
	if g.StateAt(c) != grid.Empty {
		return
	}
	//nolint:errcheck // checked in bounds above
	g.SetState(c, grid.Barrier)
}

// open removes a barrier from c.
func open(g *grid.Grid, c grid.Coord) {
	if g.StateAt(c) == grid.Barrier && g.InBounds(c) {
		//nolint:errcheck // checked in bounds above
		g.SetState(c, grid.Empty)
	}
}

// endpoints returns the designated Start and End cells that exist.
func endpoints(g *grid.Grid) []grid.Coord {
	var out []grid.Coord
	if c, ok := g.Start(); ok {
		out = append(out, c)
	}
	if c, ok := g.End(); ok {
		out = append(out, c)
	}
	return out
}
