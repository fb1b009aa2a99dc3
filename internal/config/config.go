// Package config provides YAML-based game configuration loading and
// difficulty management for Space Run.
package config

// Config contains all configuration for the game.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Animation  AnimationConfig  `yaml:"animation"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Menu       MenuConfig       `yaml:"menu"`
	Storage    StorageConfig    `yaml:"storage"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
}

// WindowConfig defines the logical playfield and loop rate.
type WindowConfig struct {
	Width    int    `yaml:"width"`     // Logical units, projected onto the terminal
	Height   int    `yaml:"height"`    // Logical units
	Title    string `yaml:"title"`     // Shown on the menu screen
	TickRate int    `yaml:"tick_rate"` // Fixed loop rate in ticks per second
}

// PlayerConfig defines the player's placement and bounding box.
type PlayerConfig struct {
	X           int `yaml:"x"` // Horizontal center of the player
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	GroundLevel int `yaml:"ground_level"` // Y of the ground line; player bottom never goes below it
}

// PhysicsConfig defines jump and gravity parameters, in units per tick.
type PhysicsConfig struct {
	Gravity                int  `yaml:"gravity"`
	JumpImpulse            int  `yaml:"jump_impulse"`
	ResetVelocityOnLanding bool `yaml:"reset_velocity_on_landing"`
}

// AnimationConfig defines sprite animation speed.
type AnimationConfig struct {
	FrameStep float64 `yaml:"frame_step"` // Frames advanced per tick
}

// ObstaclesConfig defines spawning and movement of obstacles.
type ObstaclesConfig struct {
	SpawnIntervalMs int          `yaml:"spawn_interval_ms"`
	SpawnMinX       int          `yaml:"spawn_min_x"` // Spawn band for the obstacle's horizontal center
	SpawnMaxX       int          `yaml:"spawn_max_x"`
	ExitX           int          `yaml:"exit_x"` // Obstacles at or left of this x are removed
	Ground          ObstacleKind `yaml:"ground"`
	Flying          ObstacleKind `yaml:"flying"`
}

// ObstacleKind defines one obstacle type.
type ObstacleKind struct {
	Weight int `yaml:"weight"` // Relative spawn weight
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Bottom int `yaml:"bottom"` // Y of the obstacle's bottom edge
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Preset         DifficultyPreset `yaml:"preset"`
	Enabled        bool             `yaml:"enabled"`
	BaseSpeed      int              `yaml:"base_speed"`      // Obstacle speed at run start, units per tick
	IntervalSecs   int              `yaml:"interval_secs"`   // Seconds of survival per level
	SpeedIncrement int              `yaml:"speed_increment"` // Speed added per level
}

// MenuConfig defines the menu screen behaviour.
type MenuConfig struct {
	BlinkIntervalMs int `yaml:"blink_interval_ms"`
}

// StorageConfig defines where the high score is kept.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LogConfig defines the diagnostic log.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a string into a preset.
// Unknown values return an empty preset, meaning the config is used as is.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
