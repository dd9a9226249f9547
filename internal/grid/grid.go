package grid

import (
	"fmt"
	"slices"
)

// Grid is a fixed Size x Size board of cells stored in row-major order:
// index = row*Size + col. The size never changes after construction.
//
// A Grid is not safe for concurrent use. Callers must not edit it while a
// search is running on it.
type Grid struct {
	size  int
	cells []Cell

	start    Coord
	hasStart bool
	end      Coord
	hasEnd   bool
}

// New creates a size x size grid with every cell Empty.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := &g.cells[row*size+col]
			c.Row = row
			c.Col = col
		}
	}
	return g, nil
}

// MustNew is like New but panics on an invalid size.
func MustNew(size int) *Grid {
	g, err := New(size)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the number of rows (and columns).
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

func (g *Grid) check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	return nil
}

// State returns the state of the cell at c.
func (g *Grid) State(c Coord) (State, error) {
	if err := g.check(c); err != nil {
		return Empty, err
	}
	return g.cells[g.index(c)].State, nil
}

// StateAt is State without bounds reporting; out-of-bounds cells read as Barrier.
func (g *Grid) StateAt(c Coord) State {
	if !g.InBounds(c) {
		return Barrier
	}
	return g.cells[g.index(c)].State
}

// SetState assigns a state to the cell at c.
//
// Start and End are unique: assigning either clears its previous holder.
// Overwriting the current Start or End cell with another state drops that
// designation. On error the grid is left untouched.
func (g *Grid) SetState(c Coord, s State) error {
	if err := g.check(c); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidState, s)
	}

	cell := &g.cells[g.index(c)]
	prev := cell.State
	if prev == s {
		return nil
	}

	switch s {
	case Start:
		if g.hasStart {
			g.set(g.start, Empty)
		}
	case End:
		if g.hasEnd {
			g.set(g.end, Empty)
		}
	}

	g.set(c, s)
	return nil
}

// set writes a state and maintains the Start/End bookkeeping and the
// neighbor caches. c must be in bounds.
func (g *Grid) set(c Coord, s State) {
	cell := &g.cells[g.index(c)]
	prev := cell.State
	cell.State = s

	if prev == Start && g.start == c {
		g.hasStart = false
	}
	if prev == End && g.end == c {
		g.hasEnd = false
	}
	switch s {
	case Start:
		g.start, g.hasStart = c, true
	case End:
		g.end, g.hasEnd = c, true
	}

	if (prev == Barrier) != (s == Barrier) {
		g.invalidateAround(c)
	}
}

// invalidateAround drops the cached neighbor lists of c and of every cell
// orthogonally adjacent to it.
func (g *Grid) invalidateAround(c Coord) {
	g.cells[g.index(c)].neighborsValid = false
	for _, off := range neighborOffsets {
		n := c.Add(off[0], off[1])
		if g.InBounds(n) {
			g.cells[g.index(n)].neighborsValid = false
		}
	}
}

// Neighbors returns the traversable cells orthogonally adjacent to c, in the
// order down, up, right, left. Barrier cells are never returned, and a
// Barrier cell has no neighbors itself.
//
// The list is cached until a Barrier edit touches c or one of its neighbors.
// The returned slice is a copy and may be modified by the caller.
func (g *Grid) Neighbors(c Coord) ([]Coord, error) {
	if err := g.check(c); err != nil {
		return nil, err
	}
	cell := &g.cells[g.index(c)]
	if !cell.neighborsValid {
		cell.neighbors = g.computeNeighbors(c)
		cell.neighborsValid = true
	}
	return slices.Clone(cell.neighbors), nil
}

func (g *Grid) computeNeighbors(c Coord) []Coord {
	if g.cells[g.index(c)].State == Barrier {
		return nil
	}
	out := make([]Coord, 0, 4)
	for _, off := range neighborOffsets {
		n := c.Add(off[0], off[1])
		if !g.InBounds(n) {
			continue
		}
		if g.cells[g.index(n)].State == Barrier {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Start returns the coordinate of the Start cell, if one is set.
func (g *Grid) Start() (Coord, bool) {
	return g.start, g.hasStart
}

// End returns the coordinate of the End cell, if one is set.
func (g *Grid) End() (Coord, bool) {
	return g.end, g.hasEnd
}

// ClearSearch resets every Frontier, Visited and Path cell to Empty.
// Start, End and Barrier cells are kept.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		if g.cells[i].State.IsSearchMark() {
			g.cells[i].State = Empty
		}
	}
}

// ResetAll returns a new empty grid of the same size.
func (g *Grid) ResetAll() *Grid {
	return MustNew(g.size)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		cells[i] = Cell{Row: c.Row, Col: c.Col, State: c.State}
	}
	return &Grid{
		size:     g.size,
		cells:    cells,
		start:    g.start,
		hasStart: g.hasStart,
		end:      g.end,
		hasEnd:   g.hasEnd,
	}
}

// Count returns the number of cells holding state s.
func (g *Grid) Count(s State) int {
	count := 0
	for _, cell := range g.cells {
		if cell.State == s {
			count++
		}
	}
	return count
}

// Coords returns all coordinates in the grid, ordered by row then column.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for _, cell := range g.cells {
		coords = append(coords, cell.Coord())
	}
	return coords
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if cell.State != other.cells[i].State {
			return false
		}
	}
	return true
}
