// Package audio plays the game's sound effects through the beep speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Jump chirp shape
const (
	jumpDuration  = 140 * time.Millisecond
	jumpStartFreq = 320.0
	jumpEndFreq   = 880.0
	jumpRelease   = 60 * time.Millisecond
)

// Sounder plays game sound effects. Calls must not block the game loop.
type Sounder interface {
	PlayJump()
}

// Silent discards every sound.
type Silent struct{}

// PlayJump does nothing.
func (Silent) PlayJump() {}

// Speaker plays effects on the system audio device.
type Speaker struct {
	mu     sync.Mutex
	volume float64
	closed bool
}

// NewSpeaker initializes the audio device. volume is linear in [0,1].
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	return &Speaker{volume: volume}, nil
}

// PlayJump queues the jump chirp. Playback is asynchronous.
func (s *Speaker) PlayJump() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Play(JumpSound(sampleRate, s.volume))
}

// Close releases the audio device. Safe to call more than once.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Close()
}

// JumpSound builds the rising chirp played on every jump.
func JumpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	c := NewChirp(jumpStartFreq, jumpEndFreq, jumpDuration, rate)
	faded := newFadeOut(c, jumpDuration, jumpRelease, rate)
	return newVolume(faded, volume)
}

// chirp is a sine sweep from one frequency to another.
type chirp struct {
	from, to float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewChirp creates a sine sweep lasting d.
func NewChirp(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &chirp{
		from:     from,
		to:       to,
		duration: rate.N(d),
		rate:     rate,
	}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * c.phase)
		samples[i][0] = val
		samples[i][1] = val

		t := float64(c.position) / float64(c.duration)
		freq := c.from + (c.to-c.from)*t
		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// fadeOut ramps the last release samples of a stream to zero.
type fadeOut struct {
	streamer     beep.Streamer
	position     int
	total        int
	releaseStart int
	release      int
}

func newFadeOut(s beep.Streamer, total, release time.Duration, rate beep.SampleRate) beep.Streamer {
	tot := rate.N(total)
	rel := rate.N(release)
	if rel > tot {
		rel = tot
	}
	return &fadeOut{
		streamer:     s,
		total:        tot,
		releaseStart: tot - rel,
		release:      rel,
	}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.position >= f.releaseStart && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume becomes a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

var (
	_ Sounder = Silent{}
	_ Sounder = (*Speaker)(nil)
)
