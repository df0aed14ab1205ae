package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"aoc2025/internal/aoc"
	"aoc2025/internal/logging"
	"aoc2025/internal/scaffold"
)

var (
	fetchForce  bool
	describeRaw bool
)

// fetchCmd downloads a day's input
var fetchCmd = &cobra.Command{
	Use:   "fetch [day]",
	Short: "Download a day's personal input",
	Long: `Downloads the input for a day into cmd/dayNN/input.txt. An existing
file is kept unless --force is given. Requires AOC_SESSION.`,
	Args: cobra.ExactArgs(1),
	RunE: fetchInput,
}

// describeCmd renders the puzzle text
var describeCmd = &cobra.Command{
	Use:   "describe [day]",
	Short: "Show the puzzle description in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  describeDay,
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "Overwrite an existing input file")
	describeCmd.Flags().BoolVar(&describeRaw, "raw", false, "Print markdown without rendering")
}

func fetchInput(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdContext(cmd), cfg.GetTimeout())
	defer cancel()

	client := aoc.NewClient(cfg, logger)
	path := scaffold.InputPath(cfg.Root, day)

	var (
		input   string
		fetched = true
	)
	if fetchForce {
		input, err = client.FetchInput(ctx, day)
		if err == nil {
			err = aoc.WriteInput(path, input)
		}
	} else {
		cache := &aoc.InputCache{Fetcher: client, Logger: logging.For(logger, logging.CategoryFetch)}
		input, fetched, err = cache.LoadOrFetch(ctx, day, path)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !fetched {
		fmt.Fprintln(out, styles.Muted.Render("Input already present: "+relPath(path)+" (use --force to download again)"))
		return nil
	}
	fmt.Fprintf(out, "%s %s (%d bytes)\n", styles.Success.Render("Saved"), relPath(path), len(input))
	return nil
}

func describeDay(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdContext(cmd), cfg.GetTimeout())
	defer cancel()

	p, err := aoc.NewClient(cfg, logger).FetchPuzzle(ctx, day)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if describeRaw {
		fmt.Fprintln(out, p.Markdown)
		return nil
	}

	rendered, err := renderMarkdown(p.Markdown)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	for i, answer := range p.Answers {
		fmt.Fprintf(out, "%s %s\n", styles.Success.Render(fmt.Sprintf("Part %d answer:", i+1)), answer)
	}
	return nil
}

func renderMarkdown(md string) (string, error) {
	var (
		renderer *glamour.TermRenderer
		err      error
	)
	if styles.Theme.IsDark {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	} else {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(80),
		)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
