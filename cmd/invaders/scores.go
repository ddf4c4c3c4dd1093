package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fixonz/malakainvadors/internal/engine"
	"github.com/fixonz/malakainvadors/internal/platform/tui"
	"github.com/fixonz/malakainvadors/internal/storage"
)

var (
	flagLimit int
	flagJSON  bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top high scores.

On a terminal the table is interactive; piped output is plain text.

Examples:
  invaders scores
  invaders scores --limit 5
  invaders scores --clear
  invaders scores --json --scores-file ./scores.json`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", engine.MaxHighScores, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagJSON, "json", false, "Print scores as JSON")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

// clearScores wipes the store and reports how many entries were removed.
func clearScores(store engine.ScoreStore, w io.Writer) error {
	m, ok := store.(storage.Maintainer)
	if !ok {
		return errors.New("score store cannot be cleared")
	}
	n, err := m.Count()
	if err != nil {
		return err
	}
	if err := m.Clear(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d score(s).\n", n)
	return nil
}

func runScores(_ *cobra.Command, _ []string) {
	a, err := setup("")
	if err != nil {
		fail("setup failed", err)
	}
	if a.store == nil {
		a.close()
		fail("opening scores", errors.New("no score store available"))
	}

	if flagClear {
		err := clearScores(a.store, os.Stdout)
		a.close()
		if err != nil {
			fail("clearing scores", err)
		}
		return
	}

	scores, err := a.store.TopScores(flagLimit)
	a.close()
	if err != nil {
		fail("retrieving scores", err)
	}

	switch {
	case flagJSON:
		data, err := json.MarshalIndent(scores, "", "  ")
		if err != nil {
			fail("encoding scores", err)
		}
		fmt.Println(string(data))
	case term.IsTerminal(int(os.Stdout.Fd())):
		if err := tui.RunScoreboard(scores, a.runtime.ScreenW, a.runtime.ScreenH); err != nil {
			fail("showing scores", err)
		}
	default:
		fmt.Print(tui.FormatScores(scores))
	}
}
