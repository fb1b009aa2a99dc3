// spacerun is Serbi's Space Run, an endless runner for the terminal.
//
// Usage:
//
//	spacerun           - Play the game
//	spacerun scores    - Show the high score
//	spacerun config    - Print the effective configuration
//
// Controls: Space/Up/W jumps (and starts a run from the menu),
// Q/Esc/Ctrl+C quits, Ctrl+S saves a text screenshot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacerun/internal/audio"
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/games/spacerun"
	"github.com/vovakirdan/spacerun/internal/platform/tui"
	"github.com/vovakirdan/spacerun/internal/storage"
)

const screenshotDir = "~/.spacerun/screenshots"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacerun",
	Short: "Serbi's Space Run - jump the snails, dodge the flies",
	Long: `Serbi's Space Run is an endless runner played in the terminal.
Your score is the number of seconds you survive; every 15 seconds the
obstacles get faster.

Controls:
  Space/Up/W   - Jump (starts a run from the menu)
  Q/Esc/Ctrl+C - Quit
  Ctrl+S       - Save a text screenshot

Configuration is read from ~/.spacerun/config.yaml or
./configs/spacerun.yaml when present.`,
	Args: cobra.NoArgs,
	Run:  runGame,
}

func init() {
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func runGame(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play wires the game together and blocks until the player quits.
func play() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	var sound audio.Sounder = audio.Silent{}
	if cfg.Audio.Enabled {
		spk, spkErr := audio.NewSpeaker(cfg.Audio.Volume)
		if spkErr != nil {
			return spkErr
		}
		defer spk.Close()
		sound = spk
	}

	game := spacerun.New(cfg, spacerun.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})

	width, height := terminalSize()
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Window.TickRate,
	}

	shots, err := config.ExpandHome(screenshotDir)
	if err != nil {
		shots = ""
	}

	logger.Info("starting", "backend", cfg.Storage.Backend, "high_score", game.State().HighScore)
	runErr := tui.Run(game, runtime, tui.Options{Logger: logger, ScreenshotDir: shots})

	if score := game.Shutdown(); score > 0 {
		logger.Info("run ended by quit", "score", score)
	}
	logger.Info("exiting", "high_score", game.State().HighScore)
	return runErr
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
