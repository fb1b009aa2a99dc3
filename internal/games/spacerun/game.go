// Package spacerun implements Serbi's Space Run, an endless runner where
// the player jumps over snails and ducks under flies for as long as possible.
// Score is the number of whole seconds survived.
package spacerun

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/spacerun/internal/audio"
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/storage"
)

// Options carries the collaborators of a Game. Zero values are replaced
// by in-memory, silent and discarding implementations.
type Options struct {
	Store  storage.HighScoreStore
	Sound  audio.Sounder
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Store == nil {
		o.Store = &storage.MemoryStore{}
	}
	if o.Sound == nil {
		o.Sound = audio.Silent{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Game implements the Space Run game logic.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger

	clock       *core.Clock
	rng         *rand.Rand
	player      *Player
	obstacles   *ObstacleSet
	spawner     *Spawner
	progression *Progression

	run           RunState
	lastScore     int  // Score of the most recent finished run
	runsCompleted int  // Finished runs this session
	levelUp       bool // Level-up flash is showing
	recordSaved   bool // This run's new record was already written once

	blink         core.Interval
	promptVisible bool
}

// New creates a game in the menu state. The high score is loaded once here.
func New(cfg config.Config, opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		cfg:    cfg,
		logger: opts.Logger,
		player: NewPlayer(cfg, opts),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "spacerun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Reset returns to the menu with a fresh clock and RNG seeded from runtime.
// The player and its high score are kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = g.cfg.Window.TickRate
	}
	g.clock = core.NewClock(tickRate)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.obstacles = NewObstacleSet()
	g.spawner = NewSpawner(g.cfg.Obstacles, g.cfg.Animation.FrameStep, g.rng)
	g.progression = NewProgression(g.cfg.Difficulty)

	g.run = RunState{}
	g.lastScore = 0
	g.runsCompleted = 0
	g.levelUp = false

	g.blink = core.NewInterval(time.Duration(g.cfg.Menu.BlinkIntervalMs) * time.Millisecond)
	g.blink.Start(0)
	g.promptVisible = true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.clock.Tick()
	now := g.clock.Now()

	if !g.run.Active {
		if g.blink.Due(now) {
			g.promptVisible = !g.promptVisible
		}
		if !in.Has(core.ActionJump) {
			return core.StepResult{State: g.State()}
		}
		g.startRun(now)
	}

	if o := g.spawner.Tick(now, g.run.Speed, g.obstacles); o != nil {
		g.logger.Debug("obstacle spawned", "run", g.run.ID, "kind", o.Kind(), "speed", o.Speed())
	}

	// The key that starts a run also counts as the first jump
	g.player.SampleInput(in.Has(core.ActionJump))
	g.player.Update()
	g.obstacles.Update()

	if g.progression.CheckCollision(g.player, g.obstacles) {
		g.endRun(now)
		return core.StepResult{State: g.State(), RunOver: true}
	}

	if g.progression.Advance(&g.run, now) {
		g.logger.Info("level up", "run", g.run.ID, "level", g.run.Level, "speed", g.run.Speed)
	}

	// A record is saved once when it is set and again with the final score
	if !g.recordSaved && g.run.Score > g.player.HighScore() {
		g.recordSaved = g.player.NoteScore(g.run.Score)
	}
	g.levelUp = g.progression.Flashing(g.run)

	return core.StepResult{State: g.State()}
}

func (g *Game) startRun(now time.Duration) {
	g.progression.Begin(&g.run, uuid.NewString(), now)
	g.obstacles.Clear()
	g.spawner.Start(now)
	g.levelUp = false
	g.recordSaved = false
	g.logger.Info("run started", "run", g.run.ID, "speed", g.run.Speed)
}

func (g *Game) endRun(now time.Duration) {
	g.progression.Advance(&g.run, now)
	g.spawner.Stop()
	g.lastScore = g.progression.EndRun(&g.run, g.player)
	g.runsCompleted++
	g.levelUp = false
	g.logger.Info("run over",
		"run", g.run.ID,
		"score", g.lastScore,
		"speed", g.run.Speed,
		"high_score", g.player.HighScore(),
	)
}

// Shutdown ends a run still in progress so its score is noted before the
// process exits. Returns the final score of that run, or 0 when idle.
func (g *Game) Shutdown() int {
	if !g.run.Active {
		return 0
	}
	g.obstacles.Clear()
	g.endRun(g.clock.Now())
	return g.lastScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.lastScore
	if g.run.Active {
		score = g.run.Score
	}
	return core.GameState{
		Score:     score,
		HighScore: g.player.HighScore(),
		Running:   g.run.Active,
		LevelUp:   g.levelUp,
	}
}

// Run returns a copy of the current run state.
func (g *Game) Run() RunState {
	return g.run
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns the active obstacle set.
func (g *Game) Obstacles() *ObstacleSet {
	return g.obstacles
}

// Now returns the game clock time.
func (g *Game) Now() time.Duration {
	return g.clock.Now()
}
