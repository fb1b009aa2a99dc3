package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteEmptyLoadsZero(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	high, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty database, got %d", high)
	}
}

func TestSQLiteSaveOverwrites(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}

	for _, score := range []int{42, 17, 99} {
		if err := store.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
	}
	store.Close()

	// Reopen to make sure the value survived
	store, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if high != 99 {
		t.Errorf("Expected last saved score 99, got %d", high)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM high_score").Scan(&rows); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected a single row, got %d", rows)
	}
}

func TestSQLiteRejectsNegative(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if err := store.Save(-1); err == nil {
		t.Error("Save(-1) should fail")
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		path    string
	}{
		{BackendJSON, filepath.Join(dir, "nested", "deep", "high_scores.json")},
		{BackendSQLite, filepath.Join(dir, "nested", "deep", "scores.db")},
	}

	for _, tc := range tests {
		t.Run(tc.backend, func(t *testing.T) {
			store, err := Open(tc.backend, tc.path)
			if err != nil {
				t.Fatalf("Open(%q) failed: %v", tc.backend, err)
			}
			defer store.Close()

			if err := store.Save(7); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got != 7 {
				t.Errorf("Load() = %d, expected 7", got)
			}
		})
	}

	if _, err := Open("redis", filepath.Join(dir, "x")); err == nil {
		t.Error("Open() with unknown backend should fail")
	}
}
