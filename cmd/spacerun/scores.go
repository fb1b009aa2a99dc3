package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6FC4A9"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score",
	Long: `Display the persisted high score.

Examples:
  spacerun scores`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	high, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, mutedStyle.Render(fmt.Sprintf("warning: %v", err)))
		high = 0
	}

	fmt.Println(titleStyle.Render(cfg.Window.Title))
	fmt.Println()
	if high == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println(mutedStyle.Render("Run 'spacerun' to set the first one!"))
		return
	}
	fmt.Printf("High Score: %s\n", scoreStyle.Render(fmt.Sprint(high)))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("(%s: %s)", cfg.Storage.Backend, cfg.Storage.Path)))
}
