package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.spacerun/config.yaml -> ./configs/spacerun.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// An error is returned only for an unreadable custom path or an invalid result.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return finish(candidate)
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return finish(cfg)
}

// finish applies the difficulty preset and validates the result.
func finish(cfg Config) (Config, error) {
	ApplyPreset(&cfg, cfg.Difficulty.Preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths returns the config files tried when no custom path is given.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".spacerun", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "spacerun.yaml"))
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 8
		cfg.Difficulty.IntervalSecs = 20
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 12
		cfg.Difficulty.IntervalSecs = 10
	}
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Window.TickRate))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.GroundLevel <= 0 || c.Player.GroundLevel > c.Window.Height {
		errs = append(errs, fmt.Errorf("ground_level must be within (0, %d], got %d", c.Window.Height, c.Player.GroundLevel))
	}
	if c.Player.Height > c.Player.GroundLevel {
		errs = append(errs, fmt.Errorf("player height %d does not fit above ground_level %d", c.Player.Height, c.Player.GroundLevel))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %d", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must be negative (upward), got %d", c.Physics.JumpImpulse))
	}
	// Every animated sequence has at least two frames, so a step below one
	// can never skip past the end.
	if c.Animation.FrameStep <= 0 || c.Animation.FrameStep >= 1 {
		errs = append(errs, fmt.Errorf("frame_step must be within (0, 1), got %g", c.Animation.FrameStep))
	}
	if c.Obstacles.SpawnIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMs))
	}
	if c.Obstacles.SpawnMinX > c.Obstacles.SpawnMaxX {
		errs = append(errs, fmt.Errorf("spawn band is inverted: %d > %d", c.Obstacles.SpawnMinX, c.Obstacles.SpawnMaxX))
	}
	if c.Obstacles.Ground.Weight < 0 || c.Obstacles.Flying.Weight < 0 ||
		c.Obstacles.Ground.Weight+c.Obstacles.Flying.Weight == 0 {
		errs = append(errs, errors.New("obstacle weights must be non-negative and not all zero"))
	}
	if c.Difficulty.Enabled && c.Difficulty.IntervalSecs <= 0 {
		errs = append(errs, fmt.Errorf("interval_secs must be positive, got %d", c.Difficulty.IntervalSecs))
	}
	if c.Difficulty.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("speed_increment must not be negative, got %d", c.Difficulty.SpeedIncrement))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	switch c.Storage.Backend {
	case "json", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
