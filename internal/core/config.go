package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score     int  // Score of the current run, or of the last run while in the menu
	HighScore int  // Best score across sessions
	Running   bool // Whether a run is active
	LevelUp   bool // Whether difficulty increased on the last tick
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State   GameState
	RunOver bool // True on the tick a collision ended the run
}
