package play

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reelquiz/internal/quiz"
)

// Model drives an interactive quiz session with Bubble Tea.
type Model struct {
	state        State
	table        table.Model
	tickInterval time.Duration
	startedAt    time.Time
	now          time.Time
	noColor      bool
}

// Options configures the quiz UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// NewModel constructs a quiz session model.
func NewModel(questions []quiz.Question, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 200 * time.Millisecond
	}
	t := table.New(
		table.WithColumns(resultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	now := time.Now()
	return Model{
		state:        State{Questions: questions},
		table:        t,
		tickInterval: tickInterval,
		startedAt:    now,
		now:          now,
		noColor:      opts.NoColor,
	}
}

// FinalState returns the session state, valid once the program has exited.
func (m Model) FinalState() State {
	return m.state
}

// Init starts the elapsed-time ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval)
}

// Update consumes key presses and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-6, 1))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tickMsg:
		if m.state.Phase != PhaseDone {
			m.now = time.Time(typed)
		}
		return m, tick(m.tickInterval)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		m.state = Choose(m.state, int(msg.String()[0]-'0'))
		return m, nil
	case "enter", "n":
		m.state = Advance(m.state)
		if m.state.Phase == PhaseDone {
			m.table.SetRows(rowsForState(m.state))
		}
		return m, nil
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	header := renderHeader(m.state, m.startedAt, m.now, m.noColor)
	if m.state.Phase == PhaseDone {
		score := renderScore(m.state, m.noColor)
		return lipgloss.JoinVertical(lipgloss.Left, header, score, m.table.View(), renderHelp(m.state.Phase, m.noColor))
	}
	question, ok := m.state.Current()
	if !ok {
		return header
	}
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		renderQuestion(question, m.noColor),
		renderOptions(m.state, question, m.noColor),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		renderFeedback(m.state, question, m.noColor),
		renderHelp(m.state.Phase, m.noColor),
	)
}

// tickMsg carries a clock tick for elapsed-time updates.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
