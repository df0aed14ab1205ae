package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aoc2025/internal/answers"
	"aoc2025/internal/ui"
)

// historyCmd shows recorded answers
var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show the answers recorded for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  showHistory,
}

func showHistory(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	store, err := answers.Open(cfg.GetDatabasePath(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.History(day)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No answers recorded for day %d. Use `xmas run %d --record`.\n", day, day)
		return nil
	}

	table := ui.NewTable(fmt.Sprintf("Day %02d answers", day), "Recorded", "Part", "Answer", "Time", "Input")
	for _, e := range entries {
		table.AddRow(
			e.RecordedAt.Local().Format(time.DateTime),
			fmt.Sprint(e.Part),
			fmt.Sprint(e.Value),
			e.Duration.String(),
			e.InputHash,
		)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(styles))
	return nil
}
