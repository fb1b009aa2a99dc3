package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	store := NewJSONStore(path)

	if err := store.Save(42); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 42 {
		t.Errorf("Load() = %d, expected 42", got)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != `{"high_score":42}` {
		t.Errorf("file content = %s, expected {\"high_score\":42}", data)
	}
}

func TestJSONLoadFallbacks(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
		wantErr bool
	}{
		{name: "missing file", content: nil, wantErr: false},
		{name: "corrupt content", content: ptr("{not json"), wantErr: true},
		{name: "wrong type", content: ptr(`{"high_score":"lots"}`), wantErr: true},
		{name: "negative value", content: ptr(`{"high_score":-3}`), wantErr: true},
		{name: "field absent", content: ptr(`{"other":5}`), wantErr: false},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "case", string(rune('a'+i))+".json")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatalf("MkdirAll() failed: %v", err)
			}
			if tc.content != nil {
				if err := os.WriteFile(path, []byte(*tc.content), 0o600); err != nil {
					t.Fatalf("WriteFile() failed: %v", err)
				}
			}

			got, err := NewJSONStore(path).Load()
			if got != 0 {
				t.Errorf("Load() = %d, expected 0", got)
			}
			if (err != nil) != tc.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestJSONSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(filepath.Join(dir, "high_scores.json"))

	for _, score := range []int{1, 2, 3} {
		if err := store.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the record file, found %v", names)
	}
}

func TestJSONSaveFailureKeepsPreviousRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "high_scores.json")
	store := NewJSONStore(path)

	if err := store.Save(10); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// A store pointing into a missing directory cannot create its temp file
	broken := NewJSONStore(filepath.Join(dir, "missing", "high_scores.json"))
	if err := broken.Save(20); err == nil {
		t.Error("Save() into a missing directory should fail")
	}

	got, err := store.Load()
	if err != nil || got != 10 {
		t.Errorf("Load() = %d, %v; expected 10, nil", got, err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := &MemoryStore{Score: 5}

	if got, _ := m.Load(); got != 5 {
		t.Errorf("Load() = %d, expected 5", got)
	}
	if err := m.Save(8); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if m.Score != 8 || m.Saves != 1 {
		t.Errorf("after Save(8): Score=%d Saves=%d", m.Score, m.Saves)
	}
}

func ptr(s string) *string {
	return &s
}

func TestJSONFailedRenameRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory in place of the record makes the rename fail
	path := filepath.Join(dir, "high_scores.json")
	if err := os.MkdirAll(filepath.Join(path, "taken"), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	if err := NewJSONStore(path).Save(7); err == nil {
		t.Fatal("Save() over a directory should fail")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "high_scores.json" {
			t.Errorf("leftover file %s after a failed save", e.Name())
		}
	}
}
