package config

import (
	_ "embed"
)

//go:embed defaults/spacerun.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/spacerun.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:    800,
			Height:   400,
			Title:    "Serbi's Space Run",
			TickRate: 60,
		},
		Player: PlayerConfig{
			X:           200,
			Width:       68,
			Height:      84,
			GroundLevel: 300,
		},
		Physics: PhysicsConfig{
			Gravity:                1,
			JumpImpulse:            -20,
			ResetVelocityOnLanding: true,
		},
		Animation: AnimationConfig{
			FrameStep: 0.1,
		},
		Obstacles: ObstaclesConfig{
			SpawnIntervalMs: 1500,
			SpawnMinX:       900,
			SpawnMaxX:       1100,
			ExitX:           -100,
			Ground: ObstacleKind{
				Weight: 4,
				Width:  72,
				Height: 36,
				Bottom: 300,
			},
			Flying: ObstacleKind{
				Weight: 1,
				Width:  84,
				Height: 40,
				Bottom: 210,
			},
		},
		Difficulty: DifficultyConfig{
			Preset:         DifficultyNormal,
			Enabled:        true,
			BaseSpeed:      10,
			IntervalSecs:   15,
			SpeedIncrement: 5,
		},
		Menu: MenuConfig{
			BlinkIntervalMs: 350,
		},
		Storage: StorageConfig{
			Backend: "json",
			Path:    "~/.spacerun/high_scores.json",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Log: LogConfig{
			Level: "info",
			Path:  "~/.spacerun/spacerun.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
