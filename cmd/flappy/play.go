package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Enter - Start and flap
  Left click       - Start (on the greeting) and flap
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (after game over or while paused)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("flappy")
	defer closeLog()

	cfg := loadGameConfig()

	out, err := audio.Open(cfg.Audio, flagMute, logger)
	if err != nil {
		fail("%v", err)
	}
	defer out.Close()

	store := openStore(logger)
	defer store.Close()

	game := flappy.New(cfg, out, logger)
	if err := tui.Run(game, store, runtimeConfig(), playerName(), logger); err != nil {
		fail("running game: %v", err)
	}
}
