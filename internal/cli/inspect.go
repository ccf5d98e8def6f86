package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"reelquiz/internal/dataset"
	"reelquiz/internal/duckdb"
)

var inspectDataset = duckdb.Inspect

// runInspect builds the handler for the inspect command.
func runInspect(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .reelquiz/config.yml)")
		datasetPath := fs.String("dataset", "", "Dataset file override")
		filterExpr := fs.String("filter", "", "Row filter expression override")
		topN := fs.Int("top", 5, "Most common values listed per attribute")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, baseDir, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "dataset":
				cfg.Dataset.Path = *datasetPath
			case "filter":
				cfg.Dataset.Filter = *filterExpr
			}
		})

		resolved := resolveDataPath(baseDir, cfg.Dataset.Path)
		loaded, err := dataset.LoadFile(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Inspect failed: %v\n", err)
			return ExitError
		}
		filter, err := dataset.CompileFilter(cfg.Dataset.Filter)
		if err != nil {
			fmt.Fprintf(stderr, "Inspect failed: %v\n", err)
			return ExitError
		}
		rows, excluded, err := dataset.ApplyFilter(loaded.Rows, filter)
		if err != nil {
			fmt.Fprintf(stderr, "Inspect failed: %v\n", err)
			return ExitError
		}

		stats, err := inspectDataset(context.Background(), rows, *topN)
		if err != nil {
			fmt.Fprintf(stderr, "Inspect failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Dataset %s: %d rows parsed, %d skipped", resolved, len(loaded.Rows), loaded.Skipped)
		if filter != nil {
			fmt.Fprintf(stdout, ", %d filtered out", excluded)
		}
		fmt.Fprintln(stdout)
		renderStats(stdout, stats)
		return ExitOK
	}
}

// renderStats prints the inspection report.
func renderStats(w io.Writer, stats duckdb.DatasetStats) {
	fmt.Fprintf(w, "Movies: %d\n", stats.Movies)
	if stats.HasYears {
		fmt.Fprintf(w, "Years: %d-%d\n", stats.MinYear, stats.MaxYear)
	}
	if stats.HasRatings {
		fmt.Fprintf(w, "Average rating: %.1f\n", stats.AvgRating)
	}
	if stats.Movies == 0 {
		fmt.Fprintln(w, "No movies ingested; nothing to report.")
		return
	}

	fmt.Fprintln(w, "Attribute pools (a question needs 4+ distinct values):")
	for _, attribute := range stats.Attributes {
		marker := ""
		if !attribute.Viable {
			marker = " [too few for distractors]"
		}
		fmt.Fprintf(w, "  %-8s %d distinct%s\n", attribute.Attribute, attribute.Distinct, marker)
		if len(attribute.Top) > 0 {
			fmt.Fprintf(w, "           top: %s\n", formatTopValues(attribute.Top))
		}
	}
}

// formatTopValues renders value counts as "value (n), value (n)".
func formatTopValues(values []duckdb.ValueCount) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%s (%d)", value.Value, value.Count))
	}
	return strings.Join(parts, ", ")
}
