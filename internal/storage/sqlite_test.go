package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun("forest", 12.5, 30); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.TopRuns("forest", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	for _, d := range []float64{100, 50, 200} {
		if _, err := store.SaveRun("forest", d, 60); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("meadow", 500, 90); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("forest", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	expected := []float64{200, 100, 50}
	for i, e := range expected {
		if runs[i].Distance != e {
			t.Errorf("runs[%d].Distance = %v, expected %v", i, runs[i].Distance, e)
		}
		if runs[i].Environment != "forest" {
			t.Errorf("runs[%d].Environment = %q, expected forest", i, runs[i].Environment)
		}
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Environment != "meadow" {
		t.Errorf("TopRuns(all) = %v, expected meadow first of 4", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("test", float64((i+1)*100), i)
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Distance != 500 || runs[1].Distance != 400 || runs[2].Distance != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestRun("forest")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestRun() = %v for empty environment, expected 0", best)
	}

	store.SaveRun("forest", 100, 10)
	store.SaveRun("forest", 300.5, 10)
	store.SaveRun("forest", 200, 10)

	best, err = store.BestRun("forest")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != 300.5 {
		t.Errorf("BestRun() = %v, expected 300.5", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun("forest", 100, 1)
	store.SaveRun("forest", 200, 1)
	store.SaveRun("meadow", 300, 1)

	if err := store.ClearRuns("forest"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	forest, _ := store.TopRuns("forest", 10)
	if len(forest) != 0 {
		t.Errorf("Expected 0 forest runs after clear, got %d", len(forest))
	}
	meadow, _ := store.TopRuns("meadow", 10)
	if len(meadow) != 1 {
		t.Errorf("meadow runs should not be affected by clearing forest")
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTemp(t)

	store.SaveRun("forest", 100, 10)
	store.SaveRun("forest", 300, 30)
	store.SaveRun("meadow", 50, 5)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 environments, got %d", len(stats))
	}

	f := stats["forest"]
	if f.Runs != 2 || f.BestDistance != 300 || f.AvgDistance != 200 || f.TotalTicks != 40 {
		t.Errorf("forest stats = %+v, expected 2 runs best 300 avg 200 ticks 40", f)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := expandHome("/tmp/runs.db")
	if err != nil || got != "/tmp/runs.db" {
		t.Errorf("expandHome(abs) = %q, %v; expected unchanged", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = expandHome("~/.runner/runs.db")
	if err != nil {
		t.Fatalf("expandHome() error: %v", err)
	}
	if expected := filepath.Join(home, ".runner", "runs.db"); got != expected {
		t.Errorf("expandHome() = %q, expected %q", got, expected)
	}
}
