package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"reelquiz/internal/quiz"
	"reelquiz/internal/ui/play"
)

var playQuiz = play.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .reelquiz/config.yml)")
		questionsPath := flags.String("questions", "", "Questions file override")
		noColor := flags.Bool("no-color", false, "Disable ANSI styling")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved := *questionsPath
		if resolved == "" {
			cfg, baseDir, err := loadConfig(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
				return ExitError
			}
			resolved = resolveDataPath(baseDir, cfg.Output.Path)
		}

		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "Play requires an interactive terminal (stdout is not a TTY).")
			return ExitError
		}

		questions, err := quiz.ReadFile(resolved)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(stderr, "No questions file at %s. Run \"reelquiz generate\" first.\n", resolved)
				return ExitError
			}
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		if len(questions) == 0 {
			fmt.Fprintf(stderr, "Questions file %s is empty. Run \"reelquiz generate\" first.\n", resolved)
			return ExitError
		}

		state, err := playQuiz(stdout, questions, play.Options{NoColor: *noColor})
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}

		answered, total := state.Progress()
		if answered < total {
			fmt.Fprintf(stdout, "Ended early after %d of %d questions\n", answered, total)
		}
		fmt.Fprintf(stdout, "Final score: %d/%d\n", state.Score, answered)
		return ExitOK
	}
}
