package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/spacerun/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.FillRect(core.NewRect(0, 0, 6, 1), core.ColorSky)
	s.DrawText(1, 0, "hi", core.ColorScore)
	s.DrawText(0, 1, "ground", core.ColorGrass)

	got := RenderScreen(s)
	want := " hi   \nground"
	if got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenRows(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(3, 4)
	if n := strings.Count(RenderScreen(s), "\n"); n != 3 {
		t.Errorf("RenderScreen() has %d newlines, expected 3", n)
	}
}

func TestStyleCacheReuse(t *testing.T) {
	c := styleCache{}
	c.get(core.ColorPlayer, core.ColorSky)
	c.get(core.ColorPlayer, core.ColorSky)
	c.get(core.ColorPlayer, core.ColorGround)
	if len(c) != 2 {
		t.Errorf("cache size = %d, expected 2", len(c))
	}
}
