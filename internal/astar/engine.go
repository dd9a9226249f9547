package astar

import (
	"context"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

// searchState holds the run-scoped tables. Missing entries read as +Inf.
type searchState struct {
	g    map[grid.Coord]int
	f    map[grid.Coord]int
	pred map[grid.Coord]grid.Coord
}

func newSearchState() *searchState {
	return &searchState{
		g:    make(map[grid.Coord]int),
		f:    make(map[grid.Coord]int),
		pred: make(map[grid.Coord]grid.Coord),
	}
}

func (s *searchState) cost(c grid.Coord) int {
	if v, ok := s.g[c]; ok {
		return v
	}
	return math.MaxInt
}

// Run searches between the grid's designated Start and End cells.
func Run(ctx context.Context, g *grid.Grid, onStep Observer, opts ...Option) (Result, error) {
	start, ok := g.Start()
	if !ok {
		return Result{}, fmt.Errorf("%w: grid has no start cell", ErrInvalidEndpoints)
	}
	end, ok := g.End()
	if !ok {
		return Result{}, fmt.Errorf("%w: grid has no end cell", ErrInvalidEndpoints)
	}
	return FindPath(ctx, g, start, end, onStep, opts...)
}

// FindPath runs A* from start to end on g.
//
// Any Frontier/Visited/Path marks from a previous run are cleared first.
// During the run queued cells are marked Frontier, expanded cells Visited
// and, on success, the route Path; start and end keep their own state.
// onStep may be nil.
//
// Cancelled and Exhausted are reported through Result.Outcome with a nil
// error. A cancelled run clears its marks.
func FindPath(ctx context.Context, g *grid.Grid, start, end grid.Coord, onStep Observer, opts ...Option) (Result, error) {
	o := Options{
		Policy:    PolicyKeepStale,
		Heuristic: Manhattan,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Heuristic == nil {
		o.Heuristic = Manhattan
	}

	if err := checkEndpoint(g, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(g, "end", end); err != nil {
		return Result{}, err
	}

	g.ClearSearch()

	if start == end {
		return o.finish(Result{Outcome: OutcomeSucceeded, Path: []grid.Coord{start}}), nil
	}

	mark := func(c grid.Coord, s grid.State) {
		if c == start || c == end {
			return
		}
		switch g.StateAt(c) {
		case grid.Start, grid.End:
			return
		}
		//nolint:errcheck // c comes from the grid and s is valid
		g.SetState(c, s)
	}

	state := newSearchState()
	state.g[start] = 0
	state.f[start] = o.Heuristic(start, end)

	frontier := NewFrontier()
	frontier.Push(start, state.f[start])

	expanded := 0
	for !frontier.IsEmpty() {
		if ctx.Err() != nil {
			g.ClearSearch()
			return o.finish(Result{Outcome: OutcomeCancelled, Expanded: expanded}), nil
		}

		current, err := frontier.PopMin()
		if err != nil {
			return Result{}, fmt.Errorf("astar: %w", err)
		}

		if current == end {
			return o.succeed(g, state, start, end, expanded, onStep, mark)
		}

		neighbors, err := g.Neighbors(current)
		if err != nil {
			return Result{}, fmt.Errorf("astar: expand %v: %w", current, err)
		}
		for _, n := range neighbors {
			tentative := state.g[current] + 1
			if tentative >= state.cost(n) {
				continue
			}
			state.pred[n] = current
			state.g[n] = tentative
			state.f[n] = tentative + o.Heuristic(n, end)

			if !frontier.Contains(n) {
				frontier.Push(n, state.f[n])
				mark(n, grid.Frontier)
			} else if o.Policy == PolicyDecreaseKey {
				frontier.Update(n, state.f[n])
			}
		}

		expanded++
		if onStep != nil {
			onStep(Step{Phase: PhaseSearch, Current: current, Cost: state.g[current], Iteration: expanded})
		}

		if current != start {
			mark(current, grid.Visited)
		}
	}

	return o.finish(Result{Outcome: OutcomeExhausted, Expanded: expanded}), nil
}

// succeed reconstructs the route, marks it and reports it step by step.
func (o Options) succeed(g *grid.Grid, state *searchState, start, end grid.Coord, expanded int, onStep Observer, mark func(grid.Coord, grid.State)) (Result, error) {
	revealed := 0
	steps, err := Reconstruct(state.pred, end, g.Size()*g.Size(), func(c grid.Coord) {
		mark(c, grid.Path)
		revealed++
		if onStep != nil {
			onStep(Step{Phase: PhasePath, Current: c, Cost: state.g[c], Iteration: revealed})
		}
	})
	if err != nil {
		return Result{}, fmt.Errorf("astar: %w", err)
	}

	path := orderedPath(steps, end)
	if path[0] != start {
		return Result{}, fmt.Errorf("astar: %w: chain ends at %v, not start %v", ErrNoPath, path[0], start)
	}

	return o.finish(Result{
		Outcome:  OutcomeSucceeded,
		Path:     path,
		Cost:     state.g[end],
		Expanded: expanded,
	}), nil
}

func (o Options) finish(res Result) Result {
	if o.Logger != nil {
		o.Logger.Debug("search finished",
			"outcome", res.Outcome,
			"expanded", res.Expanded,
			"length", res.Length(),
			"policy", o.Policy,
		)
	}
	return res
}

func checkEndpoint(g *grid.Grid, name string, c grid.Coord) error {
	s, err := g.State(c)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEndpoints, name, err)
	}
	if s == grid.Barrier {
		return fmt.Errorf("%w: %s %v is a barrier", ErrInvalidEndpoints, name, c)
	}
	return nil
}
