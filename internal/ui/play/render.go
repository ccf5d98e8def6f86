package play

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"reelquiz/internal/quiz"
)

// renderHeader renders the session progress line.
func renderHeader(state State, startedAt, now time.Time, noColor bool) string {
	elapsed := ""
	if !startedAt.IsZero() {
		elapsed = now.Sub(startedAt).Round(100 * time.Millisecond).String()
	}
	_, total := state.Progress()
	line := "Quiz complete"
	if state.Phase != PhaseDone {
		line = "Question " + fmtInt(state.Index+1) + "/" + fmtInt(total) + " | Score: " + fmtInt(state.Score)
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderQuestion renders the current prompt.
func renderQuestion(question quiz.Question, noColor bool) string {
	if noColor {
		return question.Prompt
	}
	return lipgloss.NewStyle().Bold(true).Render(question.Prompt)
}

// renderOptions renders the numbered answer options.
func renderOptions(state State, question quiz.Question, noColor bool) string {
	chosen := 0
	if state.Phase == PhaseFeedback && len(state.Answers) > 0 {
		chosen = state.Answers[len(state.Answers)-1].Choice
	}
	lines := make([]string, 0, len(question.Options))
	for i, option := range question.Options {
		number := i + 1
		line := "  " + fmtInt(number) + ") " + option
		if state.Phase == PhaseFeedback {
			line += optionMarker(number, chosen, question.Correct)
			line = stylizeOption(line, number, chosen, question.Correct, noColor)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// optionMarker labels options once an answer is in.
func optionMarker(number, chosen, correct int) string {
	if number == correct {
		return "  (correct)"
	}
	if number == chosen {
		return "  (your choice)"
	}
	return ""
}

// renderFeedback renders the verdict for the submitted answer.
func renderFeedback(state State, question quiz.Question, noColor bool) string {
	if state.Phase != PhaseFeedback || len(state.Answers) == 0 {
		return ""
	}
	answer := state.Answers[len(state.Answers)-1]
	if answer.Correct {
		return stylize("Correct!", noColor, lipgloss.Color("42"))
	}
	text := "Incorrect. The answer is " + question.Options[question.Correct-1] + "."
	return stylize(text, noColor, lipgloss.Color("196"))
}

// renderScore renders the final score line.
func renderScore(state State, noColor bool) string {
	answered, _ := state.Progress()
	line := "Score: " + fmtInt(state.Score) + "/" + fmtInt(answered)
	if answered > 0 {
		line += " (" + fmtInt(state.Score*100/answered) + "%)"
	}
	return stylize(line, noColor, lipgloss.Color("42"))
}

// renderHelp renders key hints for the current phase.
func renderHelp(phase Phase, noColor bool) string {
	hint := "1-4: answer | q: quit"
	switch phase {
	case PhaseFeedback:
		hint = "enter: next question | q: quit"
	case PhaseDone:
		hint = "q: quit"
	}
	return stylize(hint, noColor, lipgloss.Color("241"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeOption colors revealed options.
func stylizeOption(text string, number, chosen, correct int, noColor bool) string {
	if noColor {
		return text
	}
	color := lipgloss.Color("244")
	switch {
	case number == correct:
		color = lipgloss.Color("42")
	case number == chosen:
		color = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
