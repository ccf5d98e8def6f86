package play

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"reelquiz/internal/quiz"
)

// Run plays the quiz interactively on stdout and returns the final session state.
func Run(stdout io.Writer, questions []quiz.Question, opts Options) (State, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if len(questions) == 0 {
		return State{}, errors.New("no questions to play")
	}
	model := NewModel(questions, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return State{}, fmt.Errorf("run quiz ui: %w", err)
	}
	finalModel, ok := final.(Model)
	if !ok {
		return State{}, errors.New("unexpected quiz ui model")
	}
	return finalModel.FinalState(), nil
}
