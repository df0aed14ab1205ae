package puzzle

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aoc2025/internal/logging"
	"aoc2025/internal/ui"
)

// NewCommand builds the command line of a standalone day binary.
func NewCommand(day Day) *cobra.Command {
	var (
		inputPath string
		parts     []int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:           fmt.Sprintf("day%02d", day.Number),
		Short:         day.Name(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Verbose: verbose})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			input, err := ReadInput(inputPath)
			if err != nil {
				return err
			}

			runner := NewRunner(logger)
			runner.Out = cmd.OutOrStdout()
			_, err = runner.Run(day, input, parts)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", DefaultInput, "Puzzle input file")
	cmd.Flags().IntSliceVarP(&parts, "part", "p", nil, "Parts to run (default all)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// Main runs a day binary and exits non-zero on any failure.
func Main(day Day) {
	cmd := NewCommand(day)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.DefaultStyles().Error.Render("Error:"), err)
		os.Exit(1)
	}
}
