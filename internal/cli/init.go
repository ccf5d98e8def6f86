package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"reelquiz/internal/config"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dir := fs.String("dir", "", "Project directory to initialize (default: current directory)")
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

		root := strings.TrimSpace(*dir)
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			root = wd
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		configPath := config.ConfigPath(absRoot)

		if info, statErr := os.Stat(configPath); statErr == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: config path %q is a directory\n", configPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", configPath)
			return ExitError
		} else if !os.IsNotExist(statErr) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", statErr)
			return ExitError
		}

		reader := bufio.NewReader(initInput)
		confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize reelquiz config in %s?", config.ConfigDir(absRoot)), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		datasetPath, err := promptString(reader, stdout, "Dataset file", config.DefaultDatasetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		result, err := config.Scaffold(configPath, datasetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", result.ConfigPath)
		if result.WroteDataset {
			fmt.Fprintf(stdout, "Wrote %s\n", result.DatasetPath)
		} else {
			fmt.Fprintf(stdout, "Kept existing %s\n", result.DatasetPath)
		}
		fmt.Fprintln(stdout, "Next: reelquiz generate")
		return ExitOK
	}
}
