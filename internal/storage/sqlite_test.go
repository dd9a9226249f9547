package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-astar/internal/astar"
	"github.com/vovakirdan/tui-astar/internal/grid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRun(t *testing.T, store *Store, r Run) int64 {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	first := saveRun(t, store, Run{Layout: "maze", Size: 20, Outcome: "succeeded", PathLength: 40, Expanded: 120, Duration: 15 * time.Millisecond, Policy: "stale"})
	saveRun(t, store, Run{Layout: "open", Size: 10, Outcome: "exhausted", Expanded: 60, Policy: "decrease-key"})
	last := saveRun(t, store, Run{Layout: "maze", Size: 20, Outcome: "cancelled", Expanded: 3, Policy: "stale"})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].ID != last || runs[2].ID != first {
		t.Errorf("Expected newest first, got ids %d, %d, %d", runs[0].ID, runs[1].ID, runs[2].ID)
	}

	got := runs[2]
	if got.Layout != "maze" || got.Size != 20 || got.PathLength != 40 || got.Expanded != 120 {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.Duration != 15*time.Millisecond {
		t.Errorf("Expected duration 15ms, got %v", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	limited, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreSaveRunRequiresLayout(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Outcome: "succeeded"}); err == nil {
		t.Error("SaveRun() should reject a run without layout")
	}
}

func TestStoreRunsByLayout(t *testing.T) {
	store := openTestStore(t)
	saveRun(t, store, Run{Layout: "maze", Outcome: "succeeded", PathLength: 10, Policy: "stale"})
	saveRun(t, store, Run{Layout: "walls", Outcome: "succeeded", PathLength: 8, Policy: "stale"})
	saveRun(t, store, Run{Layout: "maze", Outcome: "exhausted", Policy: "stale"})

	runs, err := store.RunsByLayout("maze", 0)
	if err != nil {
		t.Fatalf("RunsByLayout() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 maze runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Layout != "maze" {
			t.Errorf("Unexpected layout %q", r.Layout)
		}
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("maze")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best run for empty store, got %+v", best)
	}

	saveRun(t, store, Run{Layout: "maze", Outcome: "succeeded", PathLength: 12, Expanded: 50, Policy: "stale"})
	want := saveRun(t, store, Run{Layout: "maze", Outcome: "succeeded", PathLength: 10, Expanded: 40, Policy: "stale"})
	saveRun(t, store, Run{Layout: "maze", Outcome: "succeeded", PathLength: 10, Expanded: 45, Policy: "decrease-key"})
	saveRun(t, store, Run{Layout: "maze", Outcome: "cancelled", PathLength: 0, Expanded: 2, Policy: "stale"})

	best, err = store.BestRun("maze")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.ID != want {
		t.Errorf("Expected best run %d, got %+v", want, best)
	}
}

func TestStoreLayoutStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.LayoutStats("maze")
	if err != nil {
		t.Fatalf("LayoutStats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Expected zero stats, got %+v", st)
	}

	saveRun(t, store, Run{Layout: "maze", Outcome: "succeeded", PathLength: 14, Expanded: 10, Policy: "stale"})
	saveRun(t, store, Run{Layout: "maze", Outcome: "succeeded", PathLength: 12, Expanded: 20, Policy: "stale"})
	saveRun(t, store, Run{Layout: "maze", Outcome: "exhausted", Expanded: 30, Policy: "stale"})
	saveRun(t, store, Run{Layout: "other", Outcome: "succeeded", PathLength: 2, Expanded: 1, Policy: "stale"})

	st, err = store.LayoutStats("maze")
	if err != nil {
		t.Fatalf("LayoutStats() failed: %v", err)
	}
	expected := Stats{Runs: 3, Succeeded: 2, BestLength: 12, AvgExpanded: 20}
	if st != expected {
		t.Errorf("LayoutStats() = %+v, expected %+v", st, expected)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	saveRun(t, store, Run{Layout: "maze", Outcome: "succeeded", Policy: "stale"})
	saveRun(t, store, Run{Layout: "walls", Outcome: "succeeded", Policy: "stale"})

	if err := store.ClearRuns("maze"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Layout != "walls" {
		t.Errorf("Expected only walls run left, got %+v", runs)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ = store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(runs))
	}
}

func TestNewRun(t *testing.T) {
	res := astar.Result{
		Outcome:  astar.OutcomeSucceeded,
		Path:     []grid.Coord{grid.C(0, 0), grid.C(0, 1), grid.C(1, 1)},
		Cost:     2,
		Expanded: 3,
	}
	r := NewRun("custom", 4, res, astar.PolicyDecreaseKey, time.Second)
	if r.Outcome != "succeeded" || r.PathLength != 2 || r.Expanded != 3 || r.Policy != "decrease-key" || r.Size != 4 {
		t.Errorf("NewRun() = %+v", r)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	// Use a unique test path
	testPath := "~/.astar-test-" + t.Name() + "/test.db"
	expectedPath := filepath.Join(home, ".astar-test-"+t.Name(), "test.db")

	store, err := Open(testPath)
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	store.Close()

	// Check that file was created in home dir
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("Database not created at expected path: %s", expectedPath)
	}

	// Cleanup
	os.RemoveAll(filepath.Dir(expectedPath))
}
