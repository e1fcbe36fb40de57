package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blaster/internal/games/blaster"
	"github.com/vovakirdan/tui-blaster/internal/platform/tui"
	"github.com/vovakirdan/tui-blaster/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeMode   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blaster SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection runs its own game. Scores are kept in memory for the
lifetime of the server and all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blaster/host_key

Examples:
  blaster serve                           # Listen on :23234 with auto-generated key
  blaster serve --ssh :2222               # Listen on port 2222
  blaster serve --mode endless            # Serve the endless mode

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "campaign", "Game mode: campaign, endless")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	gameID, err := gameIDForMode(flagServeMode)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	store, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("open leaderboard: %w", err)
	}
	defer store.Close()
	blaster.SetScores(store)
	blaster.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.GameID = gameID
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}

func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
