package spacerun

import (
	"math/rand"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// Kind identifies an obstacle type.
type Kind int

const (
	KindGround Kind = iota // Snail, walks along the ground
	KindFlying             // Fly, hovers at head height
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Obstacle moves left at the speed it was spawned with.
type Obstacle struct {
	kind   Kind
	rect   core.Rect
	speed  int
	exitX  int
	frames []core.Sprite
	anim   animator
}

// NewObstacle creates an obstacle of the given kind with its horizontal
// center drawn uniformly from the configured spawn band.
func NewObstacle(kind Kind, speed int, rng *rand.Rand, cfg config.ObstaclesConfig, frameStep float64) *Obstacle {
	k := cfg.Ground
	frames := snailFrames
	if kind == KindFlying {
		k = cfg.Flying
		frames = flyFrames
	}

	x := cfg.SpawnMinX
	if cfg.SpawnMaxX > cfg.SpawnMinX {
		x += rng.Intn(cfg.SpawnMaxX - cfg.SpawnMinX + 1)
	}

	return &Obstacle{
		kind:   kind,
		rect:   core.RectFromMidBottom(x, k.Bottom, k.Width, k.Height),
		speed:  speed,
		exitX:  cfg.ExitX,
		frames: frames,
		anim:   animator{step: frameStep},
	}
}

// Kind returns the obstacle type.
func (o *Obstacle) Kind() Kind {
	return o.kind
}

// Speed returns the horizontal speed captured at spawn.
func (o *Obstacle) Speed() int {
	return o.speed
}

// AdvanceAnimation steps the two-frame cycle.
func (o *Obstacle) AdvanceAnimation() {
	o.anim.advance(len(o.frames))
}

// AdvancePosition moves the obstacle left by its speed.
func (o *Obstacle) AdvancePosition() {
	o.rect.X -= o.speed
}

// Expired reports whether the obstacle reached the exit threshold.
func (o *Obstacle) Expired() bool {
	return o.rect.X <= o.exitX
}

// Update runs animation then movement for one tick.
func (o *Obstacle) Update() {
	o.AdvanceAnimation()
	o.AdvancePosition()
}

// Bounds returns the collision rectangle.
func (o *Obstacle) Bounds() core.Rect {
	return o.rect
}

// Frame returns the current sprite.
func (o *Obstacle) Frame() core.Sprite {
	return o.frames[o.anim.frame()]
}

// Draw renders the obstacle.
func (o *Obstacle) Draw(dst *core.Screen, view core.Viewport) {
	dst.DrawSprite(view.Rect(o.rect), o.Frame())
}

// ObstacleSet owns the active obstacles. Order carries no meaning.
type ObstacleSet struct {
	items []*Obstacle
}

// NewObstacleSet creates an empty set.
func NewObstacleSet() *ObstacleSet {
	return &ObstacleSet{items: make([]*Obstacle, 0, 8)}
}

// Add inserts an obstacle.
func (s *ObstacleSet) Add(o *Obstacle) {
	s.items = append(s.items, o)
}

// Update advances every obstacle and drops the expired ones in the same pass.
func (s *ObstacleSet) Update() {
	kept := s.items[:0]
	for _, o := range s.items {
		o.Update()
		if !o.Expired() {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
}

// Collides reports whether r overlaps any obstacle.
func (s *ObstacleSet) Collides(r core.Rect) bool {
	for _, o := range s.items {
		if r.Intersects(o.Bounds()) {
			return true
		}
	}
	return false
}

// Clear removes every obstacle.
func (s *ObstacleSet) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Len returns the number of active obstacles.
func (s *ObstacleSet) Len() int {
	return len(s.items)
}

// All returns the active obstacles. The slice must not be modified.
func (s *ObstacleSet) All() []*Obstacle {
	return s.items
}
