package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the persisted high score document.
type Record struct {
	HighScore int `json:"high_score"`
}

// JSONStore keeps the high score in a small JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path.
// The file is not touched until Load or Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the high score. A missing file yields 0 with no error;
// malformed content or a negative value yields 0 with an error.
func (s *JSONStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: cannot parse %s: %w", s.path, err)
	}
	if rec.HighScore < 0 {
		return 0, fmt.Errorf("storage: negative high score %d in %s", rec.HighScore, s.path)
	}
	return rec.HighScore, nil
}

// Save writes the high score to a temporary file and renames it over the
// previous record, so readers never observe a partial write.
func (s *JSONStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}

	data, err := json.Marshal(Record{HighScore: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".high_score-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot sync high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the file is opened per operation.
func (s *JSONStore) Close() error {
	return nil
}
