package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho"
	"github.com/draney98/ochoXocho/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ochoXocho SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ochoxocho/host_key

Examples:
  ochoxocho serve                           # Listen on :23234 with auto-generated key
  ochoxocho serve --ssh :2222               # Listen on port 2222
  ochoxocho serve --host-key ./my_host_key  # Use specific host key
  ochoxocho serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := consoleLogger("ochoxocho-ssh")

	if _, err := loadConfig(flagDifficulty); err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	ochoxocho.SetLogger(logger)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		logger.Fatal("could not create server", "error", err)
	}

	fmt.Printf("Starting ochoXocho SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
