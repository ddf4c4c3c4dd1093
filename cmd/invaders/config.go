package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fixonz/malakainvadors/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML, after applying the search
order: --config, ~/.invaders/config.yaml, ./configs/invaders.yaml,
then the built-in defaults. Redirect the output to start a custom file.

Examples:
  invaders config > ~/.invaders/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail("loading config", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config", err)
	}
	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
}
