package play

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the results view.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// resultColumns describes the final results table layout.
func resultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: 52},
		{Title: "Your answer", Width: 20},
		{Title: "Result", Width: 9},
	}
}

// rowsForState converts answered questions into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Answers))
	for i, answer := range state.Answers {
		if i >= len(state.Questions) {
			break
		}
		question := state.Questions[i]
		rows = append(rows, table.Row{
			fmtInt(i + 1),
			truncateText(question.Prompt, 52),
			truncateText(question.Options[answer.Choice-1], 20),
			resultLabel(answer.Correct),
		})
	}
	return rows
}

// resultLabel maps correctness to a display label.
func resultLabel(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}
