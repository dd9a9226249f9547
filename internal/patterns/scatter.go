package patterns

import (
	"math/rand"

	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/registry"
)

// DefaultDensity is the share of cells Scatter turns into barriers.
const DefaultDensity = 0.3

// Scatter places independent random barriers.
type Scatter struct {
	Density float64
}

func init() {
	registry.Register("scatter", func() registry.Pattern { return Scatter{Density: DefaultDensity} })
}

// ID returns the pattern identifier.
func (Scatter) ID() string { return "scatter" }

// Title returns the display name.
func (Scatter) Title() string { return "Scatter" }

// Apply blocks each non-endpoint cell with probability Density.
func (s Scatter) Apply(g *grid.Grid, rng *rand.Rand) {
	clearBarriers(g)
	density := s.Density
	if density <= 0 {
		return
	}
	for _, c := range g.Coords() {
		if rng.Float64() < density {
			block(g, c)
		}
	}
}
