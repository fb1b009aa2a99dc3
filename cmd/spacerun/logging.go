package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/config"
)

// newLogger opens the log file named in cfg. The terminal belongs to the
// game while it runs, so nothing is logged to stderr. An empty path
// disables logging.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: invalid level %q: %w", cfg.Level, err)
	}

	if cfg.Path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path, err := config.ExpandHome(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacerun",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
