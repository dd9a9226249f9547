// astar is a terminal A* pathfinding visualizer.
//
// Usage:
//
//	astar edit               - Edit a grid and watch the search (default)
//	astar solve              - Solve a grid headlessly and print it
//	astar patterns           - List barrier patterns
//	astar layouts            - List saved layouts
//	astar history            - Show recorded runs
//	astar serve              - Host the editor over SSH
//
// Global flags:
//
//	--config <path>       - Config file (default search: ~/.astar/config.yaml, ./configs/astar.yaml)
//	--db <path>           - Run history database (default from config)
//	--layouts-dir <path>  - Directory with layout files (default: ./layouts)
//	--log-level <level>   - debug, info, warn or error
//	--seed <value>        - RNG seed for patterns (0 = time based)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-astar/internal/config"

	// Import patterns to register them
	_ "github.com/vovakirdan/tui-astar/internal/patterns"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagLayoutsDir string
	flagLogLevel   string
	flagSeed       int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astar",
	Short: "A* pathfinding visualizer for the terminal",
	Long: `astar lets you draw a grid of barriers, place a start and an end,
and watch the A* search expand its frontier and trace the shortest path.

Available commands:
  edit      - Interactive grid editor (default)
  solve     - Solve a layout or pattern headlessly
  patterns  - Show all barrier patterns
  layouts   - Show saved layout files
  history   - View recorded runs
  serve     - Start SSH server for remote use

Examples:
  astar
  astar edit --pattern maze --size 31
  astar solve --layout corridor
  astar solve --pattern scatter --size 40 --seed 7 --policy decrease-key
  astar history --layout maze
  astar serve --ssh :2222`,
	Run: runEdit,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLayoutsDir, "layouts-dir", "layouts", "Directory with layout files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for patterns (0 = random based on time)")

	registerEditFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger at the configured level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "astar",
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// mustSetup loads config and logger or exits.
func mustSetup() (config.Config, *log.Logger) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, newLogger(cfg)
}
