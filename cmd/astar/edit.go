package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-astar/internal/config"
	"github.com/vovakirdan/tui-astar/internal/platform/tui"
)

var (
	editBoard   boardFlags
	flagTheme   string
	flagFPS     int
	flagPathFPS int
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a grid and watch A* solve it",
	Long: `Open the interactive grid editor.

Mouse:
  Left click/drag  - Place start, then end, then barriers
  Right click/drag - Erase a cell

Keys:
  Arrows/hjkl      - Move the cursor
  Enter/x          - Place at the cursor
  Del/d            - Erase at the cursor
  Space            - Run the search
  Esc              - Cancel a running search
  c                - Clear the whole grid
  r                - Clear search marks only
  p                - Apply the next barrier pattern
  f                - Toggle frontier policy (stale / decrease-key)
  t                - Next color theme
  Ctrl+S           - Save the board to the layouts directory
  ?                - Full help
  q/Ctrl+C         - Quit

Examples:
  astar edit
  astar edit --size 30 --pattern maze
  astar edit --layout corridor --fps 30
  astar edit --theme neon --policy decrease-key`,
	Run: runEdit,
}

func init() {
	registerEditFlags(editCmd)
}

// registerEditFlags adds the editor flags to cmd. The root command gets
// them too, since editing is the default action.
func registerEditFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&editBoard.size, "size", 0, "Grid size (rows == columns, default from config)")
	cmd.Flags().StringVar(&editBoard.layout, "layout", "", "Layout ID or file to open")
	cmd.Flags().StringVar(&editBoard.pattern, "pattern", "", "Barrier pattern to start with")
	cmd.Flags().StringVar(&editBoard.policy, "policy", "", "Frontier policy: stale or decrease-key")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: default, neon, mono")
	cmd.Flags().IntVar(&flagFPS, "fps", -1, "Expansion frames per second (0 = no delay)")
	cmd.Flags().IntVar(&flagPathFPS, "path-fps", -1, "Path frames per second (0 = no delay)")
}

func runEdit(_ *cobra.Command, _ []string) {
	cfg, logger := mustSetup()
	applyEditOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	policy, err := editBoard.resolvePolicy(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size to fit the board
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Size:      tui.FitSize(width, height, editBoard.resolveSize(cfg)),
		Policy:    policy,
		StepDelay: cfg.StepDelay(),
		PathDelay: cfg.PathDelay(),
		Theme:     cfg.Theme,
		Pattern:   editBoard.resolvePattern(cfg),
		Seed:      seed(),
		LayoutDir: flagLayoutsDir,
		Logger:    logger,
	}

	layoutGrid, layoutID, err := editBoard.loadLayout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'astar layouts' to see available layouts.")
		os.Exit(1)
	}
	if layoutGrid != nil {
		if fit := tui.FitSize(width, height, layoutGrid.Size()); fit < layoutGrid.Size() {
			logger.Warn("layout is larger than the terminal", "layout", layoutID, "size", layoutGrid.Size(), "fits", fit)
		}
		opts.Layout = layoutGrid
		opts.LayoutID = layoutID
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
		opts.Store = store
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyEditOverrides copies editor flags that were set into cfg.
func applyEditOverrides(cfg *config.Config) {
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagFPS >= 0 {
		cfg.Animation.FPS = flagFPS
	}
	if flagPathFPS >= 0 {
		cfg.Animation.PathFPS = flagPathFPS
	}
}
