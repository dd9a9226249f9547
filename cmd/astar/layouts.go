package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-astar/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List saved layouts",
	Long: `Shows the layout files found under --layouts-dir.

Files that fail to parse are skipped.

Examples:
  astar layouts
  astar layouts --layouts-dir ./boards`,
	Run: runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts, err := layout.NewLoader(flagLayoutsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(layouts) == 0 {
		fmt.Printf("No layouts found in %s.\n", flagLayoutsDir)
		fmt.Println("Press ctrl+s in the editor to save one.")
		return
	}

	maxIDLen := 2
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-20s  %s\n", maxIDLen, "ID", "Size", "Name", "File")
	fmt.Printf("  %-*s  %-5s  %-20s  %s\n", maxIDLen, "--", "----", "----", "----")
	for _, l := range layouts {
		fmt.Printf("  %-*s  %-5d  %-20s  %s\n", maxIDLen, l.ID, l.Size, l.Name, l.FilePath)
	}

	fmt.Println()
	fmt.Println("Run 'astar edit --layout <id>' to open one.")
}
