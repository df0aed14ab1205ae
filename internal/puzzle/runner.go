package puzzle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"aoc2025/internal/logging"
	"aoc2025/internal/ui"
)

// Result is the outcome of running one part.
type Result struct {
	Day      int
	Part     int
	Value    int
	Duration time.Duration
	Err      error
}

// Runner executes day solvers and prints their answers.
type Runner struct {
	Out    io.Writer
	Logger *zap.Logger
	Styles ui.Styles
}

// NewRunner returns a runner writing to stdout with the detected theme.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		Out:    os.Stdout,
		Logger: logging.For(logger, logging.CategoryRun),
		Styles: ui.DefaultStyles(),
	}
}

// Solve runs the selected parts (all parts when parts is empty) without
// printing anything. Solver failures are reported per Result; the error
// return is only for unknown part numbers.
func (r *Runner) Solve(day Day, input string, parts []int) ([]Result, error) {
	if len(parts) == 0 {
		parts = day.PartNumbers()
	}

	log := r.logger().With(zap.Int("day", day.Number))
	results := make([]Result, 0, len(parts))
	for _, n := range parts {
		part, err := day.Part(n)
		if err != nil {
			return results, err
		}

		log.Debug("Solving", zap.Int("part", n))
		start := time.Now()
		value, err := part.Solve(input)
		res := Result{
			Day:      day.Number,
			Part:     n,
			Value:    value,
			Duration: time.Since(start),
			Err:      err,
		}
		if err != nil {
			log.Error("Solver failed", zap.Int("part", n), zap.Error(err))
		} else {
			log.Info("Solved",
				zap.Int("part", n),
				zap.Int("value", value),
				zap.Duration("duration", res.Duration))
		}
		results = append(results, res)
	}
	return results, nil
}

// Print writes the results for one day in part order.
func (r *Runner) Print(day Day, results []Result) {
	s := r.Styles
	fmt.Fprintln(r.Out, s.Title.Render("🎄 "+day.Name()))
	for _, res := range results {
		fmt.Fprintln(r.Out, s.Part.Render(fmt.Sprintf("Part %d:", res.Part)))
		if res.Err != nil {
			fmt.Fprintf(r.Out, "\n%s\n%v\n\n", s.Error.Render("❌ Error:"), res.Err)
			continue
		}
		fmt.Fprintf(r.Out, "\n%s\n%s %s\n\n",
			s.Result.Render("🔻 Result:"),
			s.Value.Render(fmt.Sprint(res.Value)),
			s.Muted.Render("("+res.Duration.Round(time.Microsecond).String()+")"))
	}
}

// Run solves and prints the selected parts of a day.
func (r *Runner) Run(day Day, input string, parts []int) ([]Result, error) {
	results, err := r.Solve(day, input, parts)
	if err != nil {
		return nil, err
	}
	r.Print(day, results)
	return results, Errors(results)
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Errors joins the errors of all failed results, or returns nil.
func Errors(results []Result) error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("day %d part %d: %w", res.Day, res.Part, res.Err))
		}
	}
	return errors.Join(errs...)
}
