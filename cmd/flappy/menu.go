package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("flappy")
	defer closeLog()

	gameCfg := loadGameConfig()

	out, err := audio.Open(gameCfg.Audio, flagMute, logger)
	if err != nil {
		fail("%v", err)
	}
	defer out.Close()

	store := openStore(logger)
	defer store.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, flappy.GameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, flappy.GameID, flappy.Title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return // User quit from scoreboard
			}

		case tui.MenuChoicePlay:
			// Each run gets a fresh game; a zero seed is re-drawn per run
			game := flappy.New(gameCfg, out, logger)
			if err := tui.Run(game, store, cfg, playerName(), logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			// The soundtrack belongs to a run
			out.StopMusic()

		default:
			return
		}
	}
}
