package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-astar/internal/astar"
	"github.com/vovakirdan/tui-astar/internal/config"
	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/layout"
	"github.com/vovakirdan/tui-astar/internal/registry"
)

// boardFlags selects the board a command works on.
type boardFlags struct {
	size    int
	layout  string
	pattern string
	policy  string
	start   string
	end     string
}

// resolvePolicy returns the flag policy, or the configured one if unset.
func (f boardFlags) resolvePolicy(cfg config.Config) (astar.Policy, error) {
	if f.policy == "" {
		return cfg.Policy(), nil
	}
	p, ok := astar.ParsePolicy(f.policy)
	if !ok {
		return p, fmt.Errorf("unknown frontier policy %q (want stale or decrease-key)", f.policy)
	}
	return p, nil
}

// resolveSize returns the flag size, or the configured one if unset.
func (f boardFlags) resolveSize(cfg config.Config) int {
	if f.size > 0 {
		return f.size
	}
	return cfg.Grid.Size
}

// resolvePattern returns the flag pattern, or the configured one if unset.
func (f boardFlags) resolvePattern(cfg config.Config) string {
	if f.pattern != "" {
		return f.pattern
	}
	return cfg.Grid.Pattern
}

// loadLayout resolves --layout against the layouts directory.
// Returns nil, "" when no layout was requested.
func (f boardFlags) loadLayout() (*grid.Grid, string, error) {
	if f.layout == "" {
		return nil, "", nil
	}
	lay, err := layout.NewLoader(flagLayoutsDir).Resolve(f.layout)
	if err != nil {
		return nil, "", err
	}
	g, err := lay.ToGrid()
	if err != nil {
		return nil, "", fmt.Errorf("layout %s: %w", lay.ID, err)
	}
	return g, lay.ID, nil
}

// buildSolveBoard prepares a board for headless solving: a layout, or a
// fresh grid with endpoints (corners by default) and an optional pattern.
// --start and --end override the endpoints in both cases.
func (f boardFlags) buildSolveBoard(cfg config.Config) (*grid.Grid, string, error) {
	g, source, err := f.loadLayout()
	if err != nil {
		return nil, "", err
	}

	if g == nil {
		size := f.resolveSize(cfg)
		if g, err = grid.New(size); err != nil {
			return nil, "", err
		}
		source = "custom"
		if err := placeEndpoint(g, grid.C(0, 0), grid.Start); err != nil {
			return nil, "", err
		}
		if err := placeEndpoint(g, grid.C(size-1, size-1), grid.End); err != nil {
			return nil, "", err
		}
	}

	if err := f.applyEndpointFlags(g); err != nil {
		return nil, "", err
	}

	if id := f.resolvePattern(cfg); id != "" && f.layout == "" {
		p, err := registry.Create(id)
		if err != nil {
			return nil, "", err
		}
		p.Apply(g, newRNG())
		source = p.ID()
	}
	return g, source, nil
}

func (f boardFlags) applyEndpointFlags(g *grid.Grid) error {
	if f.start != "" {
		c, err := parseCoord(f.start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		if err := placeEndpoint(g, c, grid.Start); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}
	if f.end != "" {
		c, err := parseCoord(f.end)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		if err := placeEndpoint(g, c, grid.End); err != nil {
			return fmt.Errorf("--end: %w", err)
		}
	}
	return nil
}

// placeEndpoint sets s at c unless the other endpoint already sits there.
func placeEndpoint(g *grid.Grid, c grid.Coord, s grid.State) error {
	if cur, err := g.State(c); err != nil {
		return err
	} else if (cur == grid.Start || cur == grid.End) && cur != s {
		return fmt.Errorf("%v is already the %v cell", c, cur)
	}
	return g.SetState(c, s)
}

// parseCoord parses "row,col".
func parseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return grid.C(row, col), nil
}

// seed returns the --seed value, or a time-based seed.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(seed()))
}
