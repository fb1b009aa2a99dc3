package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacerun/internal/core"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorSky:        lipgloss.Color("#7EC8E3"),
	core.ColorSkyPink:    lipgloss.Color("#F4A6C8"),
	core.ColorGround:     lipgloss.Color("#8B5A2B"),
	core.ColorGrass:      lipgloss.Color("#4CAF50"),
	core.ColorMenu:       lipgloss.Color("#5E81A2"),
	core.ColorTitle:      lipgloss.Color("#6FC4A9"),
	core.ColorScore:      lipgloss.Color("#404040"),
	core.ColorAlert:      lipgloss.Color("#FF0000"),
	core.ColorPlayer:     lipgloss.Color("#E0E0E0"),
	core.ColorPlayerSkin: lipgloss.Color("#F1C27D"),
	core.ColorSnail:      lipgloss.Color("#C0712F"),
	core.ColorFly:        lipgloss.Color("#303030"),
	core.ColorWhite:      lipgloss.Color("#FFFFFF"),
}

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per colour pair seen so far.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if col, ok := palette[fg]; ok {
		s = s.Foreground(col)
	}
	if col, ok := palette[bg]; ok {
		s = s.Background(col)
	}
	c[k] = s
	return s
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
