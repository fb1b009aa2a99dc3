package spacerun

import "github.com/vovakirdan/spacerun/internal/core"

// GroundChar draws the grass edge along the ground line.
const GroundChar = '▀'

var playerSkin = map[rune]core.Color{
	'(': core.ColorPlayerSkin,
	')': core.ColorPlayerSkin,
	'o': core.ColorPlayerSkin,
}

// Walk cycle, two frames
var playerWalk = []core.Sprite{
	{
		Rows: []string{
			"  ▄▄  ",
			" (oo) ",
			" ▐██▌ ",
			"▐████▌",
			"  ██  ",
			" ▟  ▙ ",
		},
		Color:   core.ColorPlayer,
		Palette: playerSkin,
	},
	{
		Rows: []string{
			"  ▄▄  ",
			" (oo) ",
			" ▐██▌ ",
			"▐████▌",
			"  ██  ",
			"  ▌▐  ",
		},
		Color:   core.ColorPlayer,
		Palette: playerSkin,
	},
}

var playerJump = core.Sprite{
	Rows: []string{
		"▗ ▄▄ ▖",
		"▝(oo)▘",
		" ▐██▌ ",
		" ████ ",
		" ▟▀▀▙ ",
		"      ",
	},
	Color:   core.ColorPlayer,
	Palette: playerSkin,
}

// Menu illustration
var playerStand = core.Sprite{
	Rows: []string{
		"  ▄▄  ",
		" (oo) ",
		"▗▐██▌▖",
		"▘████▝",
		"  ██  ",
		"  ▌▐  ",
	},
	Color:   core.ColorPlayer,
	Palette: playerSkin,
}

var snailFrames = []core.Sprite{
	{
		Rows: []string{
			"╻ ▄@▄ ",
			"▀▀▀▀▀▀",
		},
		Color: core.ColorSnail,
	},
	{
		Rows: []string{
			"╹ ▄@▄ ",
			"▀▀▀▀▀▀",
		},
		Color: core.ColorSnail,
	},
}

var flyFrames = []core.Sprite{
	{
		Rows: []string{
			" ▝▖▗▘ ",
			"o████>",
		},
		Color: core.ColorFly,
	},
	{
		Rows: []string{
			" ▗▘▝▖ ",
			"o████>",
		},
		Color: core.ColorFly,
	},
}
