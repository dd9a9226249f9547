package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-astar/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List all barrier patterns",
	Long:  `Shows the barrier patterns that can fill a fresh grid.`,
	Run:   runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	patterns := registry.List()

	if len(patterns) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range patterns {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range patterns {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'astar edit --pattern <id>' or 'astar solve --pattern <id>' to use one.")
}
