package play

// Choose records the player's option for the current question and moves the
// session to feedback. Out-of-range choices and choices outside the asking
// phase leave the state unchanged.
func Choose(state State, choice int) State {
	if state.Phase != PhaseAsking || choice < 1 || choice > 4 {
		return state
	}
	question, ok := state.Current()
	if !ok {
		return state
	}
	correct := choice == question.Correct
	state.Answers = append(state.Answers, Answer{Choice: choice, Correct: correct})
	if correct {
		state.Score++
	}
	state.Phase = PhaseFeedback
	return state
}

// Advance moves past the feedback screen to the next question, or to the
// final screen after the last one.
func Advance(state State) State {
	if state.Phase != PhaseFeedback {
		return state
	}
	if state.Index+1 >= len(state.Questions) {
		state.Index = len(state.Questions)
		state.Phase = PhaseDone
		return state
	}
	state.Index++
	state.Phase = PhaseAsking
	return state
}
