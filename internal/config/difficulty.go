package config

// DifficultyManager maps survival time to difficulty levels and speeds.
// It is stateless; latching level changes is up to the caller.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.IntervalSecs > 0
}

// BaseSpeed returns the obstacle speed at the start of a run.
func (d *DifficultyManager) BaseSpeed() int {
	return d.cfg.BaseSpeed
}

// Level returns the number of thresholds crossed at the given score.
// A score of 15 with a 15 second interval is level 1.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.IntervalSecs
}

// Speed returns the obstacle speed for a difficulty level.
func (d *DifficultyManager) Speed(level int) int {
	return d.cfg.BaseSpeed + level*d.cfg.SpeedIncrement
}
