// Package astar provides an A* shortest-path search over a grid.Grid.
//
// It exposes two entry points:
//
//   - FindPath: search between explicit start and end coordinates.
//   - Run: search between the grid's own Start and End cells.
//
// Every move costs 1 and the Manhattan distance is the heuristic, so the
// first time the end cell is popped its cost is optimal. A search marks
// cells Frontier, Visited and Path as it goes and invokes an optional
// Observer after every expansion so a UI can animate the run. Cancellation
// is cooperative through the context, checked once per iteration.
package astar
