package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reelquiz/internal/cli"
	"reelquiz/internal/quiz"

	"github.com/cucumber/godog"
)

type featureState struct {
	projectDir  string
	configPath  string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with a valid reelquiz configuration$`, state.aProjectWithValidConfig)
	ctx.Step(`^an empty project directory$`, state.anEmptyProjectDirectory)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^the dataset contains only a header row$`, state.theDatasetIsHeaderOnly)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
	ctx.Step(`^the error message contains "([^"]+)"$`, state.theErrorMessageContains)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^a questions file is written with (\d+) questions$`, state.aQuestionsFileIsWritten)
	ctx.Step(`^the files "([^"]+)" and "([^"]+)" are identical$`, state.theFilesAreIdentical)
	ctx.Step(`^the file "([^"]+)" exists$`, state.theFileExists)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
	}
	s.projectDir = ""
	s.configPath = ""
	s.previousWD = ""
}

func (s *featureState) enterProjectDir() error {
	dir, err := os.MkdirTemp("", "reelquiz-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

func (s *featureState) aProjectWithValidConfig() error {
	if s.initialized {
		return nil
	}
	if err := s.enterProjectDir(); err != nil {
		return err
	}
	s.configPath = filepath.Join(s.projectDir, ".reelquiz", "config.yml")
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := s.writeConfig(validConfigYAML()); err != nil {
		return err
	}
	if err := s.writeDataset(sampleDatasetCSV()); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *featureState) anEmptyProjectDirectory() error {
	if s.initialized {
		return nil
	}
	if err := s.enterProjectDir(); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *featureState) theConfigIsInvalid() error {
	if err := s.aProjectWithValidConfig(); err != nil {
		return err
	}
	return s.writeConfig(invalidConfigYAML())
}

func (s *featureState) theDatasetIsHeaderOnly() error {
	if err := s.aProjectWithValidConfig(); err != nil {
		return err
	}
	return s.writeDataset("title,year,director,main_actor,genres,rating\n")
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "reelquiz" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected zero exit code, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

func (s *featureState) theErrorMessageContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected stderr to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected output to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) aQuestionsFileIsWritten(count int) error {
	path := filepath.Join(s.projectDir, "data", "questions.csv")
	questions, err := quiz.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read questions file: %w", err)
	}
	if len(questions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(questions))
	}
	return nil
}

func (s *featureState) theFilesAreIdentical(first, second string) error {
	firstData, err := os.ReadFile(filepath.Join(s.projectDir, first))
	if err != nil {
		return fmt.Errorf("read %s: %w", first, err)
	}
	secondData, err := os.ReadFile(filepath.Join(s.projectDir, second))
	if err != nil {
		return fmt.Errorf("read %s: %w", second, err)
	}
	if !bytes.Equal(firstData, secondData) {
		return fmt.Errorf("expected %s and %s to be identical", first, second)
	}
	return nil
}

func (s *featureState) theFileExists(path string) error {
	if _, err := os.Stat(filepath.Join(s.projectDir, path)); err != nil {
		return fmt.Errorf("expected %s to exist: %w", path, err)
	}
	return nil
}

func (s *featureState) writeConfig(contents string) error {
	if s.configPath == "" {
		return fmt.Errorf("config path is not set")
	}
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s *featureState) writeDataset(contents string) error {
	path := filepath.Join(s.projectDir, "data", "movies.csv")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

func validConfigYAML() string {
	return `version: 1

dataset:
  path: "data/movies.csv"

output:
  path: "data/questions.csv"

generator:
  seed: 42
  count: 0
  attributes: [year, actor, genre, director]
`
}

func invalidConfigYAML() string {
	return `version: 2

dataset:
  path: "data/movies.csv"

output:
  path: "data/questions.csv"

generator:
  seed: 42
  count: 0
  attributes: [year, actor, genre, director]
`
}

func sampleDatasetCSV() string {
	return `title,year,director,main_actor,genres,rating
The Godfather,1972,Francis Ford Coppola,Marlon Brando,"Crime, Drama",9.2
Inception,2010,Christopher Nolan,Leonardo DiCaprio,"Action, Sci-Fi",8.8
Alien,1979,Ridley Scott,Sigourney Weaver,"Horror, Sci-Fi",8.5
Heat,1995,Michael Mann,Al Pacino,"Crime, Thriller",8.3
Spirited Away,2001,Hayao Miyazaki,Rumi Hiiragi,"Animation, Fantasy",8.6
Amelie,2001,Jean-Pierre Jeunet,Audrey Tautou,"Comedy, Romance",8.3
`
}
