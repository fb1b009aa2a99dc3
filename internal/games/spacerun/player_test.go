package spacerun

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/storage"
)

type soundCounter struct {
	jumps int
}

func (s *soundCounter) PlayJump() {
	s.jumps++
}

type brokenStore struct{}

func (brokenStore) Load() (int, error) { return 0, errors.New("disk on fire") }
func (brokenStore) Save(int) error     { return errors.New("disk on fire") }
func (brokenStore) Close() error       { return nil }

func TestPlayerStartsOnGround(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg, Options{})

	r := p.Bounds()
	if r.Bottom() != 300 {
		t.Errorf("Bottom() = %d, expected 300", r.Bottom())
	}
	if cx := r.X + r.W/2; cx != 200 {
		t.Errorf("center x = %d, expected 200", cx)
	}
	if r.W != 68 || r.H != 84 {
		t.Errorf("size = %dx%d, expected 68x84", r.W, r.H)
	}
	if !p.Grounded() {
		t.Error("player should start grounded")
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	sound := &soundCounter{}
	p := NewPlayer(config.DefaultConfig(), Options{Sound: sound})

	if !p.SampleInput(true) {
		t.Fatal("SampleInput(true) on ground should jump")
	}
	if p.Velocity() != -20 {
		t.Errorf("Velocity() = %d, expected -20", p.Velocity())
	}
	p.Update()

	if p.Grounded() {
		t.Fatal("player should be airborne after a jump")
	}
	if p.SampleInput(true) {
		t.Error("SampleInput(true) in the air should not jump")
	}
	if sound.jumps != 1 {
		t.Errorf("jump sound played %d times, expected 1", sound.jumps)
	}
}

func TestPlayerNoJumpWithoutRequest(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), Options{})
	if p.SampleInput(false) {
		t.Error("SampleInput(false) should not jump")
	}
	p.Update()
	if !p.Grounded() || p.Velocity() != 0 {
		t.Errorf("idle player moved: grounded=%v velocity=%d", p.Grounded(), p.Velocity())
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), Options{})
	p.SampleInput(true)

	apex := p.Bounds().Bottom()
	ticks := 0
	for {
		p.Update()
		ticks++
		apex = min(apex, p.Bounds().Bottom())
		if p.Grounded() || ticks > 100 {
			break
		}
	}

	if ticks != 39 {
		t.Errorf("landed after %d ticks, expected 39", ticks)
	}
	if apex != 300-190 {
		t.Errorf("apex bottom = %d, expected %d", apex, 300-190)
	}
	if p.Velocity() != 0 {
		t.Errorf("Velocity() after landing = %d, expected 0", p.Velocity())
	}
}

func TestPlayerVelocityKeptWhenResetDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Physics.ResetVelocityOnLanding = false
	p := NewPlayer(cfg, Options{})

	for i := 0; i < 5; i++ {
		p.Update()
	}
	if p.Velocity() != 5 {
		t.Errorf("Velocity() = %d, expected 5", p.Velocity())
	}
	if p.Bounds().Bottom() != 300 {
		t.Errorf("Bottom() = %d, expected 300", p.Bounds().Bottom())
	}

	// A jump still overwrites the carried velocity
	p.SampleInput(true)
	if p.Velocity() != -20 {
		t.Errorf("Velocity() after jump = %d, expected -20", p.Velocity())
	}
}

func TestPlayerGroundClamp(t *testing.T) {
	for _, reset := range []bool{true, false} {
		cfg := config.DefaultConfig()
		cfg.Physics.ResetVelocityOnLanding = reset
		p := NewPlayer(cfg, Options{})
		rng := rand.New(rand.NewSource(7))

		for i := 0; i < 2000; i++ {
			p.SampleInput(rng.Intn(3) == 0)
			p.Update()
			if b := p.Bounds().Bottom(); b > 300 {
				t.Fatalf("reset=%v tick %d: Bottom() = %d, expected <= 300", reset, i, b)
			}
		}
	}
}

func TestPlayerAnimation(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), Options{})

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		p.Update()
		idx := p.anim.frame()
		if idx < 0 || idx >= len(playerWalk) {
			t.Fatalf("tick %d: frame index %d out of range", i, idx)
		}
		if p.anim.index < 0 || p.anim.index >= float64(len(playerWalk)) {
			t.Fatalf("tick %d: accumulator %f out of range", i, p.anim.index)
		}
		seen[idx] = true
	}
	if len(seen) != len(playerWalk) {
		t.Errorf("walk cycle visited %d frames, expected %d", len(seen), len(playerWalk))
	}

	p.SampleInput(true)
	p.Update()
	if got := p.Frame().Rows[0]; got != playerJump.Rows[0] {
		t.Errorf("airborne frame = %q, expected the jump pose", got)
	}
}

func TestAnimatorResetsToZero(t *testing.T) {
	a := animator{step: 0.75}
	a.advance(2) // 0.75
	a.advance(2) // 1.5
	a.advance(2) // 2.25 -> 0
	if a.index != 0 {
		t.Errorf("index = %f, expected 0 after wrap", a.index)
	}
}

func TestPlayerHighScore(t *testing.T) {
	store := &storage.MemoryStore{Score: 10}
	p := NewPlayer(config.DefaultConfig(), Options{Store: store})

	if p.HighScore() != 10 {
		t.Fatalf("HighScore() = %d, expected 10", p.HighScore())
	}

	tests := []struct {
		score     int
		wantNew   bool
		wantHigh  int
		wantSaves int
	}{
		{5, false, 10, 0},
		{10, false, 10, 0},
		{11, true, 11, 1},
		{11, false, 11, 1},
		{30, true, 30, 2},
	}

	for _, tc := range tests {
		if got := p.NoteScore(tc.score); got != tc.wantNew {
			t.Errorf("NoteScore(%d) = %v, expected %v", tc.score, got, tc.wantNew)
		}
		if p.HighScore() != tc.wantHigh {
			t.Errorf("after NoteScore(%d): HighScore() = %d, expected %d", tc.score, p.HighScore(), tc.wantHigh)
		}
		if store.Saves != tc.wantSaves {
			t.Errorf("after NoteScore(%d): Saves = %d, expected %d", tc.score, store.Saves, tc.wantSaves)
		}
	}
	if store.Score != 30 {
		t.Errorf("stored score = %d, expected 30", store.Score)
	}
}

func TestPlayerHighScoreStoreFailures(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), Options{Store: brokenStore{}})

	if p.HighScore() != 0 {
		t.Errorf("HighScore() with unreadable store = %d, expected 0", p.HighScore())
	}
	if !p.NoteScore(4) {
		t.Error("NoteScore(4) should set a record even if saving fails")
	}
	if p.HighScore() != 4 {
		t.Errorf("HighScore() = %d, expected in-memory value 4", p.HighScore())
	}
}
