package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"reelquiz/internal/config"
	"reelquiz/internal/runner"
	"reelquiz/internal/spec"
)

var runAndWrite = runner.RunAndWrite

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .reelquiz/config.yml)")
		datasetPath := fs.String("dataset", "", "Dataset file override")
		outputPath := fs.String("output", "", "Output file override")
		seed := fs.Int64("seed", 0, "Random seed override")
		count := fs.Int("count", 0, "Maximum number of questions (0 = one per fact)")
		filterExpr := fs.String("filter", "", "Row filter expression override")
		attributes := fs.String("attributes", "", "Comma-separated attributes (year,actor,genre,director)")
		verbose := fs.Bool("verbose", false, "Verbose progress output")
		noColor := fs.Bool("no-color", false, "Disable ANSI styling")
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

		applyGenerateOverrides(&cfg, fs, *datasetPath, *outputPath, *seed, *count, *filterExpr, *attributes)
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options:\n%v\n", err)
			return ExitUsage
		}

		results, err := runAndWrite(context.Background(), cfg, runner.Params{
			BaseDir:       baseDir,
			Verbose:       *verbose,
			VerboseWriter: stdout,
			NoColor:       *noColor,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}

		if len(results.Generated) == 0 {
			fmt.Fprintln(stderr, "Warning: no questions generated; wrote a header-only output file")
		}

		fmt.Fprintf(stdout, "Run %s completed\n", results.RunID)
		fmt.Fprintf(stdout, "Rows: %d parsed, %d skipped, %d filtered out\n",
			results.Dataset.RowsParsed, results.Dataset.RowsSkipped, results.Dataset.RowsFiltered)
		fmt.Fprintf(stdout, "Questions: %d from %d facts (%d facts lacked distractors)\n",
			results.Questions.Generated, results.Questions.Facts, results.Questions.SkippedFacts)
		if len(results.Questions.ByAttribute) > 0 {
			fmt.Fprintf(stdout, "By attribute: %s\n", formatCounts(results.Questions.ByAttribute))
		}
		fmt.Fprintf(stdout, "Wrote %s\n", results.OutputPath)
		return ExitOK
	}
}

// applyGenerateOverrides merges explicitly set flags into the config.
// Unset flags never touch configured values.
func applyGenerateOverrides(cfg *spec.Config, fs *flag.FlagSet, datasetPath, outputPath string, seed int64, count int, filterExpr, attributes string) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			cfg.Dataset.Path = datasetPath
		case "output":
			cfg.Output.Path = outputPath
		case "seed":
			cfg.Generator.Seed = seed
		case "count":
			cfg.Generator.Count = count
		case "filter":
			cfg.Dataset.Filter = filterExpr
		case "attributes":
			cfg.Generator.Attributes = splitList(attributes)
		}
	})
}

// splitList parses a comma-separated flag value.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// formatCounts renders per-attribute counts as sorted key=value pairs.
func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%d", key, counts[key]))
	}
	return strings.Join(pairs, " ")
}
