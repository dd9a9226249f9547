package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-astar/internal/platform/tui"
	"github.com/vovakirdan/tui-astar/internal/storage"
)

var (
	flagHistoryLayout string
	flagHistoryLimit  int
	flagHistoryClear  bool
	flagInteractive   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recent search runs from the history database.

Examples:
  astar history
  astar history --layout corridor
  astar history -i
  astar history --clear --layout maze`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryLayout, "layout", "", "Only show runs of this board")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded runs (of --layout, or all)")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, _ := mustSetup()

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(flagHistoryLayout); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagHistoryLayout != "" {
		runs, err = store.RunsByLayout(flagHistoryLayout, flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'astar solve' or press space in the editor to record one.")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-10s  %-5s  %-8s  %-12s  %s\n", "Board", "Size", "Outcome", "Path", "Expanded", "Policy", "Date")
	fmt.Printf("  %-16s  %-5s  %-10s  %-5s  %-8s  %-12s  %s\n", "-----", "----", "-------", "----", "--------", "------", "----")
	for _, r := range runs {
		path := "-"
		if r.Outcome == "succeeded" {
			path = fmt.Sprintf("%d", r.PathLength)
		}
		fmt.Printf("  %-16s  %-5d  %-10s  %-5s  %-8d  %-12s  %s\n",
			r.Layout, r.Size, r.Outcome, path, r.Expanded, r.Policy, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagHistoryLayout != "" {
		stats, err := store.LayoutStats(flagHistoryLayout)
		if err == nil {
			fmt.Println()
			fmt.Printf("Runs: %d  Solved: %d  Best path: %d  Avg expanded: %.1f\n",
				stats.Runs, stats.Succeeded, stats.BestLength, stats.AvgExpanded)
		}
	}
}
