package spacerun

import "github.com/vovakirdan/spacerun/internal/core"

// Entity is the capability shared by the player and obstacles.
type Entity interface {
	// Update advances the entity by one tick.
	Update()

	// Bounds returns the collision rectangle in logical units.
	Bounds() core.Rect

	// Draw renders the current animation frame through the viewport.
	Draw(dst *core.Screen, view core.Viewport)
}

// animator holds a fractional frame index over a fixed frame sequence.
// The index resets to 0 once it reaches the sequence length.
type animator struct {
	index float64
	step  float64
}

func (a *animator) advance(frames int) {
	a.index += a.step
	if a.index >= float64(frames) {
		a.index = 0
	}
}

// frame returns the truncated index for lookup.
func (a *animator) frame() int {
	return int(a.index)
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Obstacle)(nil)
)
