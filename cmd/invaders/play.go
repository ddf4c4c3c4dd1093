package main

import (
	"github.com/spf13/cobra"

	"github.com/fixonz/malakainvadors/internal/audio"
	"github.com/fixonz/malakainvadors/internal/platform/tui"
)

var flagVolume float64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/Right/A/D  - Move
  Space           - Fire
  Up/Down, Enter  - Menu navigation
  P               - Pause
  Esc             - Back to menu
  Q/Ctrl+C        - Quit

Logs go to ~/.invaders/invaders.log unless --log-file is set.

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --fps 30 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume adjustment (log2 scale, 0 = unchanged)")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume adjustment (log2 scale, 0 = unchanged)")
}

func openAudio(a *app) audio.Player {
	player, err := audio.New(a.runtime.Sound, flagVolume)
	if err != nil {
		a.logger.Warn("sound disabled", "err", err)
	}
	return player
}

func runPlay(_ *cobra.Command, _ []string) {
	a, err := setup(defaultLogFile)
	if err != nil {
		fail("setup failed", err)
	}

	machine, err := a.machine()
	if err != nil {
		a.close()
		fail("invalid flags", err)
	}

	player := openAudio(a)
	runErr := tui.Run(machine, tui.Options{
		Store:  a.store,
		Audio:  player,
		Logger: a.logger,
		Config: a.runtime,
	})

	// Close before potential exit
	player.Close()
	a.close()

	if runErr != nil {
		fail("running game", runErr)
	}
}
