package patterns

import (
	"math/rand"

	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/registry"
)

// Maze carves a perfect maze with a recursive backtracker.
//
// Rooms sit on odd rows and columns inside an odd-sized square; on an
// even-sized grid the last row and column stay open. Start and End are
// connected to the nearest room, so a path always exists between them.
type Maze struct{}

func init() {
	registry.Register("maze", func() registry.Pattern { return Maze{} })
}

// ID returns the pattern identifier.
func (Maze) ID() string { return "maze" }

// Title returns the display name.
func (Maze) Title() string { return "Maze" }

var mazeDirs = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Apply fills the grid with walls and carves passages through them.
func (Maze) Apply(g *grid.Grid, rng *rand.Rand) {
	clearBarriers(g)

	m := g.Size()
	if m%2 == 0 {
		m--
	}
	if m < 3 {
		return
	}

	for row := 0; row < m; row++ {
		for col := 0; col < m; col++ {
			block(g, grid.C(row, col))
		}
	}

	// Walls are tracked separately from the grid so that endpoints lying
	// on a wall cell do not count as carved rooms.
	wall := make([]bool, m*m)
	for i := range wall {
		wall[i] = true
	}
	carve := func(c grid.Coord) {
		wall[c.Row*m+c.Col] = false
		open(g, c)
	}

	start := grid.C(1, 1)
	stack := []grid.Coord{start}
	carve(start)

	candidates := make([][2]int, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range mazeDirs {
			next := curr.Add(d[0], d[1])
			// Leave the outer ring as wall
			if next.Row > 0 && next.Row < m-1 && next.Col > 0 && next.Col < m-1 && wall[next.Row*m+next.Col] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		carve(curr.Add(d[0]/2, d[1]/2))
		next := curr.Add(d[0], d[1])
		carve(next)
		stack = append(stack, next)
	}

	for _, c := range endpoints(g) {
		connectToRoom(g, c, m)
	}
}

// connectToRoom opens an L-shaped passage from c to the nearest room.
func connectToRoom(g *grid.Grid, c grid.Coord, m int) {
	target := grid.C(nearestRoom(c.Row, m), nearestRoom(c.Col, m))
	cur := c
	for cur.Row != target.Row {
		if cur.Row < target.Row {
			cur = cur.Add(1, 0)
		} else {
			cur = cur.Add(-1, 0)
		}
		open(g, cur)
	}
	for cur.Col != target.Col {
		if cur.Col < target.Col {
			cur = cur.Add(0, 1)
		} else {
			cur = cur.Add(0, -1)
		}
		open(g, cur)
	}
}

// nearestRoom maps v to the closest odd index in [1, m-2].
func nearestRoom(v, m int) int {
	if v < 1 {
		return 1
	}
	if v > m-2 {
		return m - 2
	}
	if v%2 == 0 {
		return v - 1
	}
	return v
}
