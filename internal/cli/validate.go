package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"reelquiz/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .reelquiz/config.yml)")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintln(stdout, "Config OK")
		fmt.Fprintf(stdout, "Dataset: %s\n", cfg.Dataset.Path)
		if cfg.Dataset.Filter != "" {
			fmt.Fprintf(stdout, "Filter: %s\n", cfg.Dataset.Filter)
		}
		fmt.Fprintf(stdout, "Output: %s\n", cfg.Output.Path)
		fmt.Fprintf(stdout, "Generator: seed=%d count=%d attributes=%s\n",
			cfg.Generator.Seed, cfg.Generator.Count, strings.Join(cfg.Generator.Attributes, ","))

		datasetPath := resolveDataPath(config.BaseDirFromConfigPath(resolved), cfg.Dataset.Path)
		if _, statErr := os.Stat(datasetPath); statErr != nil {
			fmt.Fprintf(stderr, "Warning: dataset file %s not found\n", datasetPath)
		}
		return ExitOK
	}
}
