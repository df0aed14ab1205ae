// Command xmas is the workspace tool for the Advent of Code solutions: it
// scaffolds new days, downloads inputs and puzzle text, and runs solvers.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2025/internal/config"
	"aoc2025/internal/logging"
	"aoc2025/internal/puzzle"
	_ "aoc2025/internal/solutions"
	"aoc2025/internal/ui"
)

var (
	// Global flags
	verbose    bool
	configPath string
	workspace  string

	cfg    *config.Config
	logger *zap.Logger
	styles = ui.DefaultStyles()
)

var rootCmd = &cobra.Command{
	Use:   "xmas",
	Short: "Advent of Code 2025 workspace tool",
	Long: `xmas manages the Advent of Code workspace.

It creates new days from templates, downloads puzzle inputs with your
session cookie (AOC_SESSION), renders puzzle text in the terminal and runs
the registered solvers, optionally checking answers against a local log.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (default: config or current directory)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <workspace>/"+config.DefaultPath+")")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(listCmd)
}

// setup loads the config and builds the logger for every subcommand.
func setup() error {
	path := configPath
	if path == "" {
		path = filepath.Join(workspace, config.DefaultPath)
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	if workspace != "" {
		cfg.Root = workspace
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	logger, err = logging.New(logging.FromConfig(cfg.Logging, verbose))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Loaded config", zap.String("path", path), zap.String("root", cfg.Root), zap.Int("year", cfg.Year))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error:"), err)
		os.Exit(1)
	}
}

// parseDay converts a command line argument into a day number.
func parseDay(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: %w", arg, err)
	}
	if n < puzzle.FirstDay || n > puzzle.LastDay {
		return 0, fmt.Errorf("%w: %d", puzzle.ErrInvalidDay, n)
	}
	return n, nil
}
