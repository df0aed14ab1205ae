package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aoc2025/internal/answers"
	"aoc2025/internal/puzzle"
	"aoc2025/internal/scaffold"
	"aoc2025/internal/ui"
)

// ErrAnswersChanged is returned by run --check when a result disagrees with
// the answer log.
var ErrAnswersChanged = errors.New("answers differ from the log")

var (
	runAll    bool
	runParts  []int
	runInput  string
	runSample bool
	runRecord bool
	runCheck  bool
)

// runCmd runs registered solvers
var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Run one or more days",
	Long: `Runs the registered solvers for the given days concurrently and prints
their results in day order.

Examples:
  xmas run 3
  xmas run 1 2 --part 2
  xmas run --all --check`,
	RunE: runDays,
}

// listCmd lists registered days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered days",
	Args:  cobra.NoArgs,
	RunE:  listDays,
}

func init() {
	runCmd.Flags().BoolVarP(&runAll, "all", "a", false, "Run every registered day that has an input")
	runCmd.Flags().IntSliceVarP(&runParts, "part", "p", nil, "Parts to run (default all)")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input file (single day only)")
	runCmd.Flags().BoolVarP(&runSample, "sample", "s", false, "Use the day's testdata/test.txt")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "Record the answers in the answer log")
	runCmd.Flags().BoolVar(&runCheck, "check", false, "Fail when an answer differs from the log")
}

// dayRun is the outcome of one day.
type dayRun struct {
	day     puzzle.Day
	hash    string
	results []puzzle.Result
}

func runDays(cmd *cobra.Command, args []string) error {
	days, err := selectDays(args)
	if err != nil {
		return err
	}
	if runInput != "" && len(days) != 1 {
		return fmt.Errorf("--input needs exactly one day, got %d", len(days))
	}

	runner := puzzle.NewRunner(logger)
	runner.Out = cmd.OutOrStdout()
	runner.Styles = styles

	runs := make([]dayRun, len(days))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, day := range days {
		g.Go(func() error {
			input, err := puzzle.ReadInput(inputFor(day.Number))
			if err != nil {
				return fmt.Errorf("day %d: %w", day.Number, err)
			}
			results, err := runner.Solve(day, input, runParts)
			if err != nil {
				return fmt.Errorf("day %d: %w", day.Number, err)
			}
			runs[i] = dayRun{day: day, hash: answers.HashInput(input), results: results}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var solveErrs []error
	for _, r := range runs {
		runner.Print(r.day, r.results)
		if err := puzzle.Errors(r.results); err != nil {
			solveErrs = append(solveErrs, err)
		}
	}

	if runRecord || runCheck {
		if err := checkAndRecord(cmd, runs); err != nil {
			solveErrs = append(solveErrs, err)
		}
	}
	return errors.Join(solveErrs...)
}

// selectDays resolves the day arguments (or --all) against the registry.
func selectDays(args []string) ([]puzzle.Day, error) {
	if runAll {
		var days []puzzle.Day
		for _, d := range puzzle.Global().All() {
			if _, err := os.Stat(inputFor(d.Number)); err != nil {
				logger.Debug("Skipping day without input", zap.Int("day", d.Number))
				continue
			}
			days = append(days, d)
		}
		if len(days) == 0 {
			return nil, fmt.Errorf("no day has an input yet (try `xmas fetch <day>`)")
		}
		return days, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no days given (pass day numbers or --all)")
	}
	days := make([]puzzle.Day, 0, len(args))
	seen := make(map[int]bool)
	for _, arg := range args {
		n, err := parseDay(arg)
		if err != nil {
			return nil, err
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		d, err := puzzle.Lookup(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func inputFor(day int) string {
	switch {
	case runInput != "":
		return runInput
	case runSample:
		return filepath.Join(scaffold.SolutionDir(cfg.Root, day), "testdata", "test.txt")
	default:
		return scaffold.InputPath(cfg.Root, day)
	}
}

func checkAndRecord(cmd *cobra.Command, runs []dayRun) error {
	store, err := answers.Open(cfg.GetDatabasePath(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	var changed bool
	if runCheck {
		for _, r := range runs {
			mismatches, err := store.Check(r.results, r.hash)
			if err != nil {
				return err
			}
			for _, m := range mismatches {
				changed = true
				fmt.Fprintln(out, styles.Error.Render("✗ "+m.String()))
			}
		}
		if !changed {
			fmt.Fprintln(out, styles.Success.Render("✓ answers match the log"))
		}
	}

	if runRecord {
		total := 0
		for _, r := range runs {
			n, err := store.Record(r.results, r.hash)
			if err != nil {
				return err
			}
			total += n
		}
		fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("recorded %d answers", total)))
	}

	if changed {
		return ErrAnswersChanged
	}
	return nil
}

func listDays(cmd *cobra.Command, args []string) error {
	table := ui.NewTable(fmt.Sprintf("Advent of Code %d", cfg.Year), "Day", "Title", "Parts", "Input")
	for _, d := range puzzle.Global().All() {
		input := "missing"
		if info, err := os.Stat(scaffold.InputPath(cfg.Root, d.Number)); err == nil {
			input = fmt.Sprintf("%d bytes, %s", info.Size(), info.ModTime().Format(time.DateOnly))
		}
		table.AddRow(fmt.Sprintf("%02d", d.Number), d.Title, fmt.Sprint(len(d.Parts)), input)
	}
	if table.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No days registered. Create one with `xmas new <day>`.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(styles))
	return nil
}
