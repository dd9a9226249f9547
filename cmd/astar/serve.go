package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-astar/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	serveBoard      boardFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor SSH server",
	Long: `Start an SSH server that hosts the grid editor.

Each SSH connection gets its own editor sized to the client terminal.
Runs are recorded in the server's history database. Saving layouts is
disabled for remote sessions.

Examples:
  astar serve                           # Listen on the configured address
  astar serve --ssh :2222               # Listen on port 2222
  astar serve --host-key ./my_host_key  # Use specific host key
  astar serve --pattern maze            # Start every session on a maze

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&serveBoard.size, "size", 0, "Largest grid size offered to sessions")
	serveCmd.Flags().StringVar(&serveBoard.layout, "layout", "", "Layout every session starts on")
	serveCmd.Flags().StringVar(&serveBoard.pattern, "pattern", "", "Barrier pattern every session starts on")
	serveCmd.Flags().StringVar(&serveBoard.policy, "policy", "", "Frontier policy: stale or decrease-key")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, logger := mustSetup()
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	policy, err := serveBoard.resolvePolicy(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	editor := tui.Options{
		Size:      serveBoard.resolveSize(cfg),
		Policy:    policy,
		StepDelay: cfg.StepDelay(),
		PathDelay: cfg.PathDelay(),
		Theme:     cfg.Theme,
		Pattern:   serveBoard.resolvePattern(cfg),
		Seed:      flagSeed,
	}
	layoutGrid, layoutID, err := serveBoard.loadLayout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	editor.Layout = layoutGrid
	editor.LayoutID = layoutID

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		DBPath:      cfg.Storage.DB,
		IdleTimeout: time.Duration(cfg.SSH.IdleTimeoutMinutes) * time.Minute,
		Editor:      editor,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting astar SSH server on %s\n", srvCfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(srvCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
