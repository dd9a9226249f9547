package astar

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

func TestReconstructChain(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{
		grid.C(0, 1): grid.C(0, 0),
		grid.C(0, 2): grid.C(0, 1),
		grid.C(1, 2): grid.C(0, 2),
	}

	var observed []grid.Coord
	steps, err := Reconstruct(pred, grid.C(1, 2), 9, func(c grid.Coord) {
		observed = append(observed, c)
	})
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}

	expected := []grid.Coord{grid.C(0, 2), grid.C(0, 1), grid.C(0, 0)}
	if !slices.Equal(steps, expected) {
		t.Errorf("Reconstruct() = %v, expected %v", steps, expected)
	}
	if !slices.Equal(observed, expected) {
		t.Errorf("observer saw %v, expected %v", observed, expected)
	}

	path := orderedPath(steps, grid.C(1, 2))
	wantPath := []grid.Coord{grid.C(0, 0), grid.C(0, 1), grid.C(0, 2), grid.C(1, 2)}
	if !slices.Equal(path, wantPath) {
		t.Errorf("orderedPath() = %v, expected %v", path, wantPath)
	}
}

func TestReconstructNoPredecessor(t *testing.T) {
	steps, err := Reconstruct(map[grid.Coord]grid.Coord{}, grid.C(2, 2), 9, nil)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("expected no steps, got %v", steps)
	}
}

func TestReconstructCycleGuard(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{
		grid.C(0, 0): grid.C(0, 1),
		grid.C(0, 1): grid.C(0, 0),
	}
	if _, err := Reconstruct(pred, grid.C(0, 0), 4, nil); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath for cyclic chain, got %v", err)
	}
}
