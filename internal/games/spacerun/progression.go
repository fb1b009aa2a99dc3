package spacerun

import (
	"time"

	"github.com/vovakirdan/spacerun/internal/config"
)

// RunState is the transient state of one run. It is reset on every
// transition from the menu to an active run and never persisted.
type RunState struct {
	ID        string        // Correlates log lines of one run
	Active    bool          // Whether the run is in progress
	StartTime time.Duration // Clock time at run start
	Score     int           // Whole seconds survived
	Speed     int           // Obstacle speed for new spawns; only increases
	Level     int           // Last difficulty threshold applied
}

// Progression checks collisions and applies score and difficulty changes.
type Progression struct {
	difficulty *config.DifficultyManager
	interval   int
}

// NewProgression creates a controller for the given difficulty settings.
func NewProgression(cfg config.DifficultyConfig) *Progression {
	return &Progression{
		difficulty: config.NewDifficultyManager(cfg),
		interval:   cfg.IntervalSecs,
	}
}

// Begin resets run to a fresh active run starting at now.
func (p *Progression) Begin(run *RunState, id string, now time.Duration) {
	*run = RunState{
		ID:        id,
		Active:    true,
		StartTime: now,
		Speed:     p.difficulty.BaseSpeed(),
	}
}

// CheckCollision reports whether the player overlaps any obstacle.
// On a hit the obstacle set is cleared.
func (p *Progression) CheckCollision(player Entity, set *ObstacleSet) bool {
	if !set.Collides(player.Bounds()) {
		return false
	}
	set.Clear()
	return true
}

// Advance recomputes the score at time now and applies every difficulty
// threshold crossed since the last call exactly once. Reports whether the
// level changed on this call.
func (p *Progression) Advance(run *RunState, now time.Duration) bool {
	elapsed := now - run.StartTime
	if elapsed < 0 {
		elapsed = 0
	}
	run.Score = int(elapsed / time.Second)

	level := p.difficulty.Level(run.Score)
	if level <= run.Level {
		return false
	}
	run.Level = level
	run.Speed = p.difficulty.Speed(level)
	return true
}

// Flashing reports whether the run is inside the second in which its
// latest level was reached.
func (p *Progression) Flashing(run RunState) bool {
	if !p.difficulty.IsEnabled() || run.Level == 0 {
		return false
	}
	return run.Score == run.Level*p.interval
}

// EndRun deactivates run, hands its score to the player and returns it.
func (p *Progression) EndRun(run *RunState, player *Player) int {
	run.Active = false
	player.NoteScore(run.Score)
	return run.Score
}
