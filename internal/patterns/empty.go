package patterns

import (
	"math/rand"

	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/registry"
)

// Empty removes every barrier.
type Empty struct{}

func init() {
	registry.Register("empty", func() registry.Pattern { return Empty{} })
}

// ID returns the pattern identifier.
func (Empty) ID() string { return "empty" }

// Title returns the display name.
func (Empty) Title() string { return "Empty" }

// Apply clears all barriers.
func (Empty) Apply(g *grid.Grid, _ *rand.Rand) {
	clearBarriers(g)
}
