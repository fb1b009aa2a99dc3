// Package storage persists the single high score record.
// Two backends are available: a JSON file and a SQLite database.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/spacerun/internal/config"
)

// HighScoreStore loads and saves the persisted high score.
type HighScoreStore interface {
	// Load returns the stored high score. A missing record is 0 with no error.
	Load() (int, error)

	// Save overwrites the stored high score.
	Save(score int) error

	// Close releases any resources held by the store.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open creates the store for the given backend at path.
// A leading ~ is expanded and parent directories are created.
func Open(backend, path string) (HighScoreStore, error) {
	path, err := preparePath(path)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendJSON, "":
		return NewJSONStore(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// preparePath expands ~ and creates the parent directory of path.
func preparePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("storage: empty path")
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

// MemoryStore keeps the high score in memory only.
// Used when persistence is unavailable and in tests.
type MemoryStore struct {
	Score   int
	Saves   int   // Number of Save calls
	SaveErr error // Returned by Save when set
}

// Load returns the in-memory score.
func (m *MemoryStore) Load() (int, error) {
	return m.Score, nil
}

// Save records the score unless SaveErr is set.
func (m *MemoryStore) Save(score int) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Score = score
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

var (
	_ HighScoreStore = (*JSONStore)(nil)
	_ HighScoreStore = (*SQLiteStore)(nil)
	_ HighScoreStore = (*MemoryStore)(nil)
)
