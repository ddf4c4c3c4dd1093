// invaders is a space shooter that runs in the terminal, in a desktop
// window, or over SSH.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the high-score table
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Game config YAML
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.invaders/scores.db)
//	--scores-file <path> - Keep scores in a JSON file instead of the database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresFile string
	flagName       string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Malakai Cabal Invadooorz - shoot down the invading waves",
	Long: `Malakai Cabal Invadooorz is a wave shooter. Enemies arrive in
ever larger waves, a boss shows up every tenth level, and the best
runs land on a shared high-score table.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  invaders play
  invaders play --difficulty hard --name MALAKAI
  invaders window --sound
  invaders serve --ssh :2222
  invaders scores --json`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	pf.StringVar(&flagScoresFile, "scores-file", "", "Store scores in a JSON file instead of the database")
	pf.StringVar(&flagName, "name", "", "Player name recorded with high scores")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: easy, medium, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (terminal play defaults to ~/.invaders/invaders.log)")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
