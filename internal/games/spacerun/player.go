package spacerun

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/audio"
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/storage"
)

// Player is the runner. Its x position is fixed; only y changes.
type Player struct {
	rect     core.Rect // Collision box, logical units
	velocity int       // Vertical velocity, positive is down
	anim     animator

	groundLevel int
	gravity     int
	jumpImpulse int
	resetOnLand bool

	highScore int
	store     storage.HighScoreStore
	sound     audio.Sounder
	logger    *log.Logger
}

// NewPlayer creates the player standing on the ground and loads the
// persisted high score from opts.Store.
func NewPlayer(cfg config.Config, opts Options) *Player {
	opts = opts.withDefaults()
	p := &Player{
		rect:        core.RectFromMidBottom(cfg.Player.X, cfg.Player.GroundLevel, cfg.Player.Width, cfg.Player.Height),
		anim:        animator{step: cfg.Animation.FrameStep},
		groundLevel: cfg.Player.GroundLevel,
		gravity:     cfg.Physics.Gravity,
		jumpImpulse: cfg.Physics.JumpImpulse,
		resetOnLand: cfg.Physics.ResetVelocityOnLanding,
		store:       opts.Store,
		sound:       opts.Sound,
		logger:      opts.Logger,
	}
	p.highScore = p.LoadHighScore()
	return p
}

// Grounded reports whether the player stands on the ground.
func (p *Player) Grounded() bool {
	return p.rect.Bottom() >= p.groundLevel
}

// SampleInput applies a jump impulse when jump is requested and the
// player is grounded. Reports whether a jump started.
func (p *Player) SampleInput(jump bool) bool {
	if !jump || !p.Grounded() {
		return false
	}
	p.velocity = p.jumpImpulse
	p.sound.PlayJump()
	return true
}

// ApplyPhysics integrates gravity and clamps the player to the ground.
func (p *Player) ApplyPhysics() {
	p.velocity += p.gravity
	p.rect.Y += p.velocity
	if p.rect.Bottom() >= p.groundLevel {
		p.rect.SetBottom(p.groundLevel)
		if p.resetOnLand {
			p.velocity = 0
		}
	}
}

// AdvanceAnimation steps the walk cycle while grounded.
// Airborne players show the jump pose and keep their walk index.
func (p *Player) AdvanceAnimation() {
	if !p.Grounded() {
		return
	}
	p.anim.advance(len(playerWalk))
}

// Update runs physics then animation for one tick.
func (p *Player) Update() {
	p.ApplyPhysics()
	p.AdvanceAnimation()
}

// Bounds returns the collision rectangle.
func (p *Player) Bounds() core.Rect {
	return p.rect
}

// Velocity returns the vertical velocity in units per tick.
func (p *Player) Velocity() int {
	return p.velocity
}

// Frame returns the sprite for the current animation state.
func (p *Player) Frame() core.Sprite {
	if !p.Grounded() {
		return playerJump
	}
	return playerWalk[p.anim.frame()]
}

// Draw renders the player.
func (p *Player) Draw(dst *core.Screen, view core.Viewport) {
	dst.DrawSprite(view.Rect(p.rect), p.Frame())
}

// HighScore returns the best score known to this process.
func (p *Player) HighScore() int {
	return p.highScore
}

// LoadHighScore reads the persisted high score. Any failure reads as 0.
func (p *Player) LoadHighScore() int {
	score, err := p.store.Load()
	if err != nil {
		p.logger.Debug("high score unavailable, starting from 0", "error", err)
		return 0
	}
	return score
}

// PersistHighScore writes score to the store. Failures are logged and
// otherwise ignored; the in-memory value stays authoritative.
func (p *Player) PersistHighScore(score int) {
	if err := p.store.Save(score); err != nil {
		p.logger.Warn("could not save high score", "score", score, "error", err)
	}
}

// NoteScore records a finished run's score. Only a strictly greater score
// becomes the new high score and is persisted. Reports whether it did.
func (p *Player) NoteScore(score int) bool {
	if score <= p.highScore {
		return false
	}
	p.highScore = score
	p.PersistHighScore(score)
	p.logger.Info("new high score", "score", score)
	return true
}
