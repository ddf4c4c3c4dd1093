package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fixonz/malakainvadors/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. The SSH user name is recorded
with high scores and all users share the same table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.invaders/host_key

Examples:
  invaders serve                           # Listen on :23234 with auto-generated key
  invaders serve --ssh :2222               # Listen on port 2222
  invaders serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	a, err := setup("")
	if err != nil {
		fail("setup failed", err)
	}

	opts, err := machineOptions()
	if err != nil {
		a.close()
		fail("invalid flags", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Options = opts

	server, err := tui.NewSSHServer(cfg, a.deps())
	if err != nil {
		a.close()
		fail("creating server", err)
	}

	fmt.Printf("Starting invaders SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	a.close()
	if serveErr != nil {
		fail("server", serveErr)
	}
}
