package astar

import (
	"fmt"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

// Reconstruct walks the predecessor map back from end until it reaches a
// cell with no predecessor (the start). It returns the walked cells in
// end-to-start order: end itself is excluded, the start is the last element.
//
// observe, if non-nil, is called once per walked cell so a caller can reveal
// the path progressively. A chain longer than limit steps fails with
// ErrNoPath.
func Reconstruct(pred map[grid.Coord]grid.Coord, end grid.Coord, limit int, observe func(grid.Coord)) ([]grid.Coord, error) {
	var steps []grid.Coord
	current := end
	for {
		prev, ok := pred[current]
		if !ok {
			return steps, nil
		}
		if len(steps) >= limit {
			return nil, fmt.Errorf("%w: predecessor chain from %v exceeds %d steps", ErrNoPath, end, limit)
		}
		steps = append(steps, prev)
		if observe != nil {
			observe(prev)
		}
		current = prev
	}
}

// orderedPath turns Reconstruct output into a start-to-end path that
// includes both endpoints.
func orderedPath(steps []grid.Coord, end grid.Coord) []grid.Coord {
	path := make([]grid.Coord, 0, len(steps)+1)
	for i := len(steps) - 1; i >= 0; i-- {
		path = append(path, steps[i])
	}
	return append(path, end)
}
