package play

import "reelquiz/internal/quiz"

// Phase identifies where the quiz session is.
type Phase int

const (
	// PhaseAsking waits for the player to pick an option.
	PhaseAsking Phase = iota
	// PhaseFeedback shows whether the last answer was right.
	PhaseFeedback
	// PhaseDone shows the final score and breakdown.
	PhaseDone
)

// Answer records the player's choice for one question.
type Answer struct {
	Choice  int
	Correct bool
}

// State captures the quiz session state.
type State struct {
	Questions []quiz.Question
	Index     int
	Phase     Phase
	Answers   []Answer
	Score     int
}

// Current returns the question being asked. The second return is false once
// the session is over.
func (s State) Current() (quiz.Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return quiz.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Progress reports how many questions were answered out of the total.
func (s State) Progress() (answered, total int) {
	return len(s.Answers), len(s.Questions)
}
