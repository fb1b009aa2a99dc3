package spacerun

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// Spawner adds obstacles on a fixed interval while a run is active.
type Spawner struct {
	timer     core.Interval
	cfg       config.ObstaclesConfig
	frameStep float64
	rng       *rand.Rand
}

// NewSpawner creates a disarmed spawner drawing from rng.
func NewSpawner(cfg config.ObstaclesConfig, frameStep float64, rng *rand.Rand) *Spawner {
	return &Spawner{
		timer:     core.NewInterval(time.Duration(cfg.SpawnIntervalMs) * time.Millisecond),
		cfg:       cfg,
		frameStep: frameStep,
		rng:       rng,
	}
}

// Start arms the spawn timer; the first obstacle appears one interval after now.
func (s *Spawner) Start(now time.Duration) {
	s.timer.Start(now)
}

// Stop disarms the spawn timer.
func (s *Spawner) Stop() {
	s.timer.Stop()
}

// Tick adds one obstacle at the given speed when the timer fires.
// Returns the new obstacle, or nil if nothing spawned.
func (s *Spawner) Tick(now time.Duration, speed int, set *ObstacleSet) *Obstacle {
	if !s.timer.Due(now) {
		return nil
	}
	o := NewObstacle(s.PickKind(), speed, s.rng, s.cfg, s.frameStep)
	set.Add(o)
	return o
}

// PickKind chooses an obstacle kind by the configured weights.
func (s *Spawner) PickKind() Kind {
	total := s.cfg.Ground.Weight + s.cfg.Flying.Weight
	if total <= 0 {
		return KindGround
	}
	if s.rng.Intn(total) < s.cfg.Ground.Weight {
		return KindGround
	}
	return KindFlying
}
