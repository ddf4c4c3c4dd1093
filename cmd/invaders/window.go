package main

import (
	"github.com/spf13/cobra"

	"github.com/fixonz/malakainvadors/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window scaled from the 800x600 field.

Controls are the same as in the terminal. Closing the window or
pressing Q quits.

Examples:
  invaders window
  invaders window --sound --volume -1`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	a, err := setup("")
	if err != nil {
		fail("setup failed", err)
	}

	machine, err := a.machine()
	if err != nil {
		a.close()
		fail("invalid flags", err)
	}

	player := openAudio(a)
	runErr := window.Run(machine, window.Options{
		Store:  a.store,
		Audio:  player,
		Logger: a.logger,
		Config: a.runtime,
	})

	player.Close()
	a.close()

	if runErr != nil {
		fail("running game", runErr)
	}
}
