package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2025/internal/puzzle"
	"aoc2025/internal/scaffold"
	"aoc2025/internal/watch"
)

var watchSample bool

// watchCmd re-runs a day whenever its input changes
var watchCmd = &cobra.Command{
	Use:   "watch [day]",
	Short: "Re-run a day whenever its input file changes",
	Long: `Runs the day once, then again every time cmd/dayNN/input.txt (or the
sample with --sample) is saved. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: watchDay,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchSample, "sample", "s", false, "Watch testdata/test.txt instead of input.txt")
}

func watchDay(cmd *cobra.Command, args []string) error {
	n, err := parseDay(args[0])
	if err != nil {
		return err
	}
	day, err := puzzle.Lookup(n)
	if err != nil {
		return err
	}

	path := scaffold.InputPath(cfg.Root, n)
	if watchSample {
		path = filepath.Join(scaffold.SolutionDir(cfg.Root, n), "testdata", "test.txt")
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndRun(ctx, cmd, day, path)
}

// watchAndRun runs day against path now and on every change until ctx ends.
func watchAndRun(ctx context.Context, cmd *cobra.Command, day puzzle.Day, path string) error {
	runner := puzzle.NewRunner(logger)
	runner.Out = cmd.OutOrStdout()
	runner.Styles = styles

	run := func(_ context.Context, p string) error {
		input, err := puzzle.ReadInput(p)
		if err != nil {
			return err
		}
		_, err = runner.Run(day, input, nil)
		return err
	}

	if err := run(ctx, path); err != nil {
		logger.Warn("Initial run failed", zap.Error(err))
	}

	w, err := watch.New([]string{path}, run, logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("Watching "+relPath(path)+" (Ctrl+C to stop)"))
	<-ctx.Done()

	stats := w.Stats()
	logger.Debug("Watch finished", zap.Int("runs", stats.Runs), zap.Int("errors", stats.Errors))
	return nil
}
