package core

// Color identifies a palette entry for a screen cell.
// The platform layer decides how each entry maps to terminal colors.
type Color uint8

// Palette entries used by the game.
const (
	ColorDefault Color = iota
	ColorSky
	ColorSkyPink
	ColorGround
	ColorGrass
	ColorMenu
	ColorTitle
	ColorScore
	ColorAlert
	ColorPlayer
	ColorPlayerSkin
	ColorSnail
	ColorFly
	ColorWhite
)
