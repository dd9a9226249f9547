package grid

import (
	"errors"
	"slices"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := New(5)
	if err != nil {
		t.Fatalf("New(5) failed: %v", err)
	}
	if g.Size() != 5 {
		t.Errorf("Size() = %d, expected 5", g.Size())
	}
	if len(g.cells) != 25 {
		t.Errorf("expected 25 cells, got %d", len(g.cells))
	}
	if g.Count(Empty) != 25 {
		t.Errorf("expected all cells empty, got %d", g.Count(Empty))
	}
	for _, c := range g.Coords() {
		cell := g.cells[g.index(c)]
		if cell.Row != c.Row || cell.Col != c.Col {
			t.Errorf("cell at %v reports (%d,%d)", c, cell.Row, cell.Col)
		}
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d): expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := MustNew(5)

	testCases := []struct {
		coord    Coord
		expected bool
	}{
		{C(0, 0), true},
		{C(4, 4), true},
		{C(2, 2), true},
		{C(-1, 0), false},
		{C(0, -1), false},
		{C(5, 0), false},
		{C(0, 5), false},
		{C(5, 5), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestOutOfBoundsLeavesGridUntouched(t *testing.T) {
	g := MustNew(3)
	before := g.Clone()

	if err := g.SetState(C(3, 0), Barrier); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetState out of bounds: expected ErrOutOfBounds, got %v", err)
	}
	if _, err := g.State(C(0, -1)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("State out of bounds: expected ErrOutOfBounds, got %v", err)
	}
	if _, err := g.Neighbors(C(-1, -1)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Neighbors out of bounds: expected ErrOutOfBounds, got %v", err)
	}
	if err := g.SetState(C(1, 1), State(42)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SetState invalid state: expected ErrInvalidState, got %v", err)
	}
	if !g.Equal(before) {
		t.Error("failed operations mutated the grid")
	}
}

func TestSingleStartAndEnd(t *testing.T) {
	g := MustNew(4)

	mustSet(t, g, C(0, 0), Start)
	mustSet(t, g, C(1, 1), Start)
	if s := g.StateAt(C(0, 0)); s != Empty {
		t.Errorf("previous start should be cleared, got %v", s)
	}
	if c, ok := g.Start(); !ok || c != C(1, 1) {
		t.Errorf("Start() = %v, %v; expected (1,1), true", c, ok)
	}

	mustSet(t, g, C(3, 3), End)
	mustSet(t, g, C(2, 3), End)
	if g.Count(End) != 1 || g.Count(Start) != 1 {
		t.Errorf("expected exactly one start and end, got %d and %d", g.Count(Start), g.Count(End))
	}

	// Placing End on the Start cell moves the designation.
	mustSet(t, g, C(1, 1), End)
	if _, ok := g.Start(); ok {
		t.Error("start should be dropped when overwritten by end")
	}
	if c, ok := g.End(); !ok || c != C(1, 1) {
		t.Errorf("End() = %v, %v; expected (1,1), true", c, ok)
	}
	if g.StateAt(C(2, 3)) != Empty {
		t.Error("previous end should be cleared")
	}

	mustSet(t, g, C(1, 1), Empty)
	if _, ok := g.End(); ok {
		t.Error("end should be dropped when erased")
	}
}

func TestNeighborsOrder(t *testing.T) {
	g := MustNew(3)

	tests := []struct {
		name     string
		cell     Coord
		expected []Coord
	}{
		{"center", C(1, 1), []Coord{C(2, 1), C(0, 1), C(1, 2), C(1, 0)}},
		{"top-left corner", C(0, 0), []Coord{C(1, 0), C(0, 1)}},
		{"bottom-right corner", C(2, 2), []Coord{C(1, 2), C(2, 1)}},
		{"top edge", C(0, 1), []Coord{C(1, 1), C(0, 2), C(0, 0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Neighbors(tc.cell)
			if err != nil {
				t.Fatalf("Neighbors(%v) failed: %v", tc.cell, err)
			}
			if !slices.Equal(got, tc.expected) {
				t.Errorf("Neighbors(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestNeighborsIdempotent(t *testing.T) {
	g := MustNew(4)
	mustSet(t, g, C(1, 2), Barrier)

	for _, c := range g.Coords() {
		first, _ := g.Neighbors(c)
		second, _ := g.Neighbors(c)
		if !slices.Equal(first, second) {
			t.Errorf("Neighbors(%v) not idempotent: %v vs %v", c, first, second)
		}
	}
}

func TestNeighborsExcludeBarriers(t *testing.T) {
	g := MustNew(3)
	// Warm the caches before editing.
	for _, c := range g.Coords() {
		g.Neighbors(c) //nolint:errcheck // in bounds
	}

	mustSet(t, g, C(1, 1), Barrier)

	for _, c := range g.Coords() {
		ns, _ := g.Neighbors(c)
		if slices.Contains(ns, C(1, 1)) {
			t.Errorf("Neighbors(%v) returned barrier cell after edit: %v", c, ns)
		}
	}
	if ns, _ := g.Neighbors(C(1, 1)); len(ns) != 0 {
		t.Errorf("barrier cell should have no neighbors, got %v", ns)
	}

	// Removing the barrier must make it traversable again.
	mustSet(t, g, C(1, 1), Empty)
	ns, _ := g.Neighbors(C(0, 1))
	if !slices.Contains(ns, C(1, 1)) {
		t.Errorf("Neighbors((0,1)) should include (1,1) after barrier removal, got %v", ns)
	}
	ns, _ = g.Neighbors(C(1, 1))
	if len(ns) != 4 {
		t.Errorf("center should have 4 neighbors, got %v", ns)
	}
}

func TestNeighborsReturnsCopy(t *testing.T) {
	g := MustNew(3)
	ns, _ := g.Neighbors(C(1, 1))
	ns[0] = C(9, 9)

	again, _ := g.Neighbors(C(1, 1))
	if again[0] != C(2, 1) {
		t.Errorf("cached neighbors were mutated through returned slice: %v", again)
	}
}

func TestClearSearch(t *testing.T) {
	g := MustNew(3)
	mustSet(t, g, C(0, 0), Start)
	mustSet(t, g, C(2, 2), End)
	mustSet(t, g, C(1, 1), Barrier)
	mustSet(t, g, C(0, 1), Frontier)
	mustSet(t, g, C(1, 0), Visited)
	mustSet(t, g, C(2, 0), Path)

	g.ClearSearch()

	if g.Count(Frontier)+g.Count(Visited)+g.Count(Path) != 0 {
		t.Error("search marks should be cleared")
	}
	if g.StateAt(C(0, 0)) != Start || g.StateAt(C(2, 2)) != End || g.StateAt(C(1, 1)) != Barrier {
		t.Error("editor states should survive ClearSearch")
	}
}

func TestResetAllAndClone(t *testing.T) {
	g := MustNew(4)
	mustSet(t, g, C(0, 0), Start)
	mustSet(t, g, C(1, 1), Barrier)

	clone := g.Clone()
	if !clone.Equal(g) {
		t.Fatal("clone should equal original")
	}
	mustSet(t, clone, C(2, 2), Barrier)
	if g.StateAt(C(2, 2)) != Empty {
		t.Error("editing clone should not affect original")
	}
	if c, ok := clone.Start(); !ok || c != C(0, 0) {
		t.Error("clone should keep start designation")
	}

	fresh := g.ResetAll()
	if fresh.Size() != 4 || fresh.Count(Empty) != 16 {
		t.Errorf("ResetAll should return empty 4x4 grid, got size %d with %d empty", fresh.Size(), fresh.Count(Empty))
	}
	if g.StateAt(C(1, 1)) != Barrier {
		t.Error("ResetAll should not modify the receiver")
	}
}

func TestParseState(t *testing.T) {
	for s := Empty; s < stateCount; s++ {
		parsed, ok := ParseState(s.String())
		if !ok || parsed != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), parsed, ok)
		}
	}
	if _, ok := ParseState("lava"); ok {
		t.Error("ParseState should reject unknown names")
	}
}

func mustSet(t *testing.T, g *Grid, c Coord, s State) {
	t.Helper()
	if err := g.SetState(c, s); err != nil {
		t.Fatalf("SetState(%v, %v) failed: %v", c, s, err)
	}
}
