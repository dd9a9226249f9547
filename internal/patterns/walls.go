package patterns

import (
	"math/rand"

	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/registry"
)

// wallSpacing is the column distance between two walls.
const wallSpacing = 4

// Walls draws full-height vertical walls, each with one random gap.
type Walls struct{}

func init() {
	registry.Register("walls", func() registry.Pattern { return Walls{} })
}

// ID returns the pattern identifier.
func (Walls) ID() string { return "walls" }

// Title returns the display name.
func (Walls) Title() string { return "Walls" }

// Apply draws walls at columns 2, 6, 10, ... leaving one open cell in each.
// Every column of the grid stays reachable from every other.
func (Walls) Apply(g *grid.Grid, rng *rand.Rand) {
	clearBarriers(g)
	n := g.Size()
	for col := 2; col < n; col += wallSpacing {
		gap := rng.Intn(n)
		for row := 0; row < n; row++ {
			if row != gap {
				block(g, grid.C(row, col))
			}
		}
	}
}
