package astar

import "github.com/vovakirdan/tui-astar/internal/grid"

// Heuristic returns the estimated remaining cost from a to b.
// It must never overestimate for the search to stay optimal.
type Heuristic func(a, b grid.Coord) int

// Manhattan is |a.Row-b.Row| + |a.Col-b.Col|. Admissible and consistent on a
// 4-connected unit-cost grid.
func Manhattan(a, b grid.Coord) int {
	return a.Manhattan(b)
}
