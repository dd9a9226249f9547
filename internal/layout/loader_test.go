package layout

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-astar/internal/astar"
	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/layout/formats"
)

const testdataPath = "testdata/layouts"

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataPath)

	layouts, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml and notes.txt are skipped.
	ids := make([]string, len(layouts))
	for i, l := range layouts {
		ids[i] = l.ID
	}
	expected := []string{"boxed", "corridor", "open"}
	if !slices.Equal(ids, expected) {
		t.Errorf("LoadAll ids = %v, expected %v", ids, expected)
	}
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := NewLoader(testdataPath).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != "boxed" {
		t.Errorf("ListIDs() = %v", ids)
	}
}

func TestLoaderLoadMapLayout(t *testing.T) {
	lay, err := NewLoader(testdataPath).LoadByID("corridor")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lay.Name != "Corridor" || lay.Size != 5 {
		t.Errorf("got name %q size %d", lay.Name, lay.Size)
	}
	if lay.Metadata["author"] != "astar" {
		t.Errorf("metadata not loaded: %v", lay.Metadata)
	}
	if filepath.Base(lay.FilePath) != "corridor.yaml" {
		t.Errorf("FilePath = %q", lay.FilePath)
	}

	g, err := lay.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}
	if g.Count(grid.Barrier) != 8 {
		t.Errorf("expected 8 barriers, got %d", g.Count(grid.Barrier))
	}

	res, err := astar.Run(context.Background(), g, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Found() || res.Length() != 16 {
		t.Errorf("expected 16-step corridor path, got %v length %d", res.Outcome, res.Length())
	}
}

func TestLoaderLoadExplicitLayout(t *testing.T) {
	lay, err := NewLoader(testdataPath).LoadByID("boxed")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	g, err := lay.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}
	if end, ok := g.End(); !ok || end != grid.C(4, 4) {
		t.Errorf("End() = %v, %v", end, ok)
	}

	res, err := astar.Run(context.Background(), g, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Outcome != astar.OutcomeExhausted {
		t.Errorf("boxed layout should exhaust, got %v", res.Outcome)
	}
}

func TestLoaderNotFound(t *testing.T) {
	if _, err := NewLoader(testdataPath).LoadByID("nonexistent"); err == nil {
		t.Error("expected error for nonexistent layout")
	}
}

func TestLoaderResolve(t *testing.T) {
	loader := NewLoader(testdataPath)

	byPath, err := loader.Resolve(filepath.Join(testdataPath, "extra", "open.yml"))
	if err != nil {
		t.Fatalf("Resolve(path) failed: %v", err)
	}
	byID, err := loader.Resolve("open")
	if err != nil {
		t.Fatalf("Resolve(id) failed: %v", err)
	}
	if byPath.ID != "open" || byID.ID != "open" {
		t.Errorf("Resolve ids = %q, %q", byPath.ID, byID.ID)
	}
}

func TestLoaderSaveRoundTrip(t *testing.T) {
	g := grid.MustNew(4)
	mustSet(t, g, grid.C(0, 0), grid.Start)
	mustSet(t, g, grid.C(3, 3), grid.End)
	mustSet(t, g, grid.C(1, 1), grid.Barrier)
	mustSet(t, g, grid.C(2, 2), grid.Visited)

	loader := NewLoader(filepath.Join(t.TempDir(), "saved"))
	path, err := loader.Save("mine", "My Layout", g)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	lay, err := loader.LoadByID("mine")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	loaded, err := lay.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}

	want := g.Clone()
	want.ClearSearch()
	if !loaded.Equal(want) {
		t.Errorf("round trip mismatch:\n got\n%s\nwant\n%s", grid.RenderASCII(loaded), grid.RenderASCII(want))
	}
	if lay.Name != "My Layout" {
		t.Errorf("Name = %q", lay.Name)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "size: 4\n"},
		{"no size", "id: x\n"},
		{"size mismatch", "id: x\nsize: 3\nmap: |\n  S.\n  .E\n"},
		{"bad map", "id: x\nmap: |\n  S?\n  .E\n"},
		{"bad yaml", "id: [x\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := formats.ParseYAML([]byte(tc.data)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestToGridOutOfBounds(t *testing.T) {
	lay, err := formats.ParseYAML([]byte("id: x\nsize: 3\nbarriers:\n  - {row: 5, col: 0}\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if _, err := lay.ToGrid(); err == nil {
		t.Error("expected out-of-bounds barrier error")
	}
}

func mustSet(t *testing.T, g *grid.Grid, c grid.Coord, s grid.State) {
	t.Helper()
	if err := g.SetState(c, s); err != nil {
		t.Fatalf("SetState(%v, %v) failed: %v", c, s, err)
	}
}
