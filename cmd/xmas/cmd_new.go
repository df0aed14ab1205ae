package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2025/internal/aoc"
	"aoc2025/internal/logging"
	"aoc2025/internal/scaffold"
)

var (
	newTitle   string
	newNoFetch bool
)

// newCmd creates the workspace for a day
var newCmd = &cobra.Command{
	Use:   "new [day]",
	Short: "Create a new day and download its input",
	Long: `Creates internal/solutions/dayNN (solution, test and sample) and
cmd/dayNN (standalone binary), registers the day with xmas, then downloads
the personal input into cmd/dayNN/input.txt.

The puzzle page is fetched for the title and first example block; use
--no-fetch to work offline.

Example:
  xmas new 12`,
	Args: cobra.ExactArgs(1),
	RunE: newDay,
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "Puzzle title (default: read from the puzzle page)")
	newCmd.Flags().BoolVar(&newNoFetch, "no-fetch", false, "Do not contact adventofcode.com")
}

func newDay(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdContext(cmd), 2*cfg.GetTimeout())
	defer cancel()

	client := aoc.NewClient(cfg, logger)
	opts := scaffold.Options{Title: newTitle}
	if !newNoFetch {
		p, err := client.FetchPuzzle(ctx, day)
		if err != nil {
			// The page is optional; the day can be filled in by hand.
			logger.Warn("Could not read puzzle page", zap.Int("day", day), zap.Error(err))
		} else {
			if opts.Title == "" {
				opts.Title = p.Title
			}
			if sample, ok := p.FirstSample(); ok {
				opts.Sample = sample
			}
		}
	}

	res, err := scaffold.New(cfg.Root, cfg.Module, logger).Create(day, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range res.FilesCreated {
		fmt.Fprintln(out, styles.Muted.Render("  created "+relPath(f)))
	}

	if !newNoFetch {
		cache := &aoc.InputCache{Fetcher: client, Logger: logging.For(logger, logging.CategoryFetch)}
		inputPath := scaffold.InputPath(cfg.Root, day)
		if _, _, err := cache.LoadOrFetch(ctx, day, inputPath); err != nil {
			if !errors.Is(err, aoc.ErrNoSession) {
				return fmt.Errorf("day created but input download failed: %w", err)
			}
			fmt.Fprintln(out, styles.Error.Render("No session cookie; set AOC_SESSION and run `xmas fetch "+args[0]+"`."))
		} else {
			fmt.Fprintln(out, styles.Muted.Render("  created "+relPath(inputPath)))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Success.Render("🎄 Done!"))
	fmt.Fprintln(out, "Next step:")
	fmt.Fprintln(out, styles.Command.Render("cd "+relPath(res.CommandDir)+" && go run ."))
	return nil
}

// relPath shows p relative to the workspace root when possible.
func relPath(p string) string {
	if rel, err := filepath.Rel(cfg.Root, p); err == nil {
		return rel
	}
	return p
}

// cmdContext returns the command's context, or Background when the command
// was invoked directly.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
