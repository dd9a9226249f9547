package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-astar/internal/astar"
	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/storage"
)

var (
	solveBoard    boardFlags
	flagTimeout   time.Duration
	flagNoRender  bool
	flagNoHistory bool
	flagShowSteps bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a grid without the editor",
	Long: `Run the search headlessly and print the solved board.

The board is a saved layout (--layout) or a fresh grid with the start in
the top-left and the end in the bottom-right corner, optionally filled
with a barrier pattern. --start and --end move the endpoints.

Legend:
  S start   E end   # barrier   o frontier   x visited   * path

Examples:
  astar solve --layout corridor
  astar solve --pattern maze --size 41 --seed 3
  astar solve --size 20 --start 0,10 --end 19,10 --policy decrease-key
  astar solve --pattern scatter --timeout 2s --no-render`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveBoard.size, "size", 0, "Grid size (rows == columns, default from config)")
	solveCmd.Flags().StringVar(&solveBoard.layout, "layout", "", "Layout ID or file to solve")
	solveCmd.Flags().StringVar(&solveBoard.pattern, "pattern", "", "Barrier pattern for a fresh grid")
	solveCmd.Flags().StringVar(&solveBoard.policy, "policy", "", "Frontier policy: stale or decrease-key")
	solveCmd.Flags().StringVar(&solveBoard.start, "start", "", "Start cell as row,col")
	solveCmd.Flags().StringVar(&solveBoard.end, "end", "", "End cell as row,col")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Cancel the search after this long (0 = no limit)")
	solveCmd.Flags().BoolVar(&flagNoRender, "no-render", false, "Print only the summary")
	solveCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the run")
	solveCmd.Flags().BoolVar(&flagShowSteps, "steps", false, "Log every expansion at debug level")
}

func runSolve(_ *cobra.Command, _ []string) {
	cfg, logger := mustSetup()

	policy, err := solveBoard.resolvePolicy(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, source, err := solveBoard.buildSolveBoard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	var onStep astar.Observer
	if flagShowSteps {
		onStep = func(s astar.Step) {
			logger.Debug("step", "phase", s.Phase, "cell", s.Current, "g", s.Cost, "n", s.Iteration)
		}
	}

	logger.Debug("solving", "board", source, "size", g.Size(), "policy", policy)
	began := time.Now()
	res, err := astar.Run(ctx, g, onStep, astar.WithPolicy(policy), astar.WithLogger(logger))
	elapsed := time.Since(began)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !flagNoRender {
		fmt.Print(grid.RenderASCII(g))
		fmt.Println()
	}
	printSummary(source, g.Size(), policy, res, elapsed)

	if !flagNoHistory {
		recordRun(cfg, logger, storage.NewRun(source, g.Size(), res, policy, elapsed))
	}

	if !res.Found() {
		os.Exit(2)
	}
}

func printSummary(source string, size int, policy astar.Policy, res astar.Result, elapsed time.Duration) {
	fmt.Printf("Board:    %s (%dx%d)\n", source, size, size)
	fmt.Printf("Policy:   %s\n", policy)
	fmt.Printf("Outcome:  %s\n", res.Outcome)
	if res.Found() {
		fmt.Printf("Path:     %d moves\n", res.Length())
	}
	fmt.Printf("Expanded: %d cells\n", res.Expanded)
	fmt.Printf("Time:     %s\n", elapsed.Round(time.Microsecond))
}
