package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play there.

Controls:
  Space/Up/W/Enter - Start and flap
  Left click/tap   - Start (on the greeting) and flap
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Close the window

Examples:
  flappy window
  flappy window --difficulty easy --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("flappy-window")
	defer closeLog()

	cfg := loadGameConfig()

	out, err := audio.Open(cfg.Audio, flagMute, logger)
	if err != nil {
		fail("%v", err)
	}
	defer out.Close()

	game := flappy.New(cfg, out, logger)
	err = gfx.Run(game, gfx.Options{
		Seed:     flagSeed,
		TickRate: flagFPS,
		Logger:   logger,
	})
	if err != nil {
		fail("%v", err)
	}
}
