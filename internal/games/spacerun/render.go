package spacerun

import (
	"fmt"

	"github.com/vovakirdan/spacerun/internal/core"
)

// Layout anchors in logical units
const (
	titleY      = 80
	illusCY     = 200
	scoreLineY  = 280
	highScoreX  = 600
	lastScoreX  = 200
	promptY     = 340
	scoreHUDY   = 50
	levelUpY    = 200
	illusFactor = 2
)

// Render draws the current screen: the menu or the active run.
func (g *Game) Render(dst *core.Screen) {
	view := core.NewViewport(g.cfg.Window.Width, g.cfg.Window.Height, dst.Width(), dst.Height())
	if g.run.Active {
		g.renderActive(dst, view)
		return
	}
	g.renderMenu(dst, view)
}

func (g *Game) renderMenu(dst *core.Screen, view core.Viewport) {
	dst.Fill(core.ColorMenu)

	cx := g.cfg.Window.Width / 2
	w := g.cfg.Player.Width * illusFactor
	h := g.cfg.Player.Height * illusFactor
	dst.DrawSprite(view.Rect(core.RectFromMidBottom(cx, illusCY+h/2, w, h)), playerStand)

	drawText(dst, view, cx, titleY, g.cfg.Window.Title, core.ColorTitle)
	drawText(dst, view, highScoreX, scoreLineY, fmt.Sprintf("High Score: %d", g.player.HighScore()), core.ColorTitle)

	if g.runsCompleted > 0 {
		drawText(dst, view, lastScoreX, scoreLineY, fmt.Sprintf("Your score: %d", g.lastScore), core.ColorTitle)
	} else if g.promptVisible {
		drawText(dst, view, cx, promptY, "Press space to run", core.ColorTitle)
	}
}

func (g *Game) renderActive(dst *core.Screen, view core.Viewport) {
	dst.Clear()

	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	ground := g.cfg.Player.GroundLevel

	sky := core.ColorSky
	if g.levelUp {
		sky = core.ColorSkyPink
	}
	dst.FillRect(view.Rect(core.NewRect(0, 0, w, ground)), sky)
	dst.FillRect(view.Rect(core.NewRect(0, ground, w, h-ground)), core.ColorGround)

	_, gy := view.Point(0, ground)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorGrass)

	drawText(dst, view, w/2, scoreHUDY, fmt.Sprintf("Score: %d", g.run.Score), core.ColorScore)

	for _, o := range g.obstacles.All() {
		o.Draw(dst, view)
	}
	g.player.Draw(dst, view)

	if g.levelUp {
		drawText(dst, view, w/2, levelUpY, "Level Up!", core.ColorAlert)
	}
}

// drawText centers text on a logical point.
func drawText(dst *core.Screen, view core.Viewport, x, y int, text string, fg core.Color) {
	sx, sy := view.Point(x, y)
	dst.DrawTextCenteredAt(sx, sy, text, fg)
}
