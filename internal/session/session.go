package session

import (
	"fmt"
	"time"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/prompt"
)

// CurrentQuestion returns the question awaiting an answer.
// Returns false once every question has been answered.
func CurrentQuestion(state *SessionState) (bank.Question, bool) {
	if state.CurrentIndex >= len(state.Test.Questions) {
		return bank.Question{}, false
	}
	return state.Test.Questions[state.CurrentIndex], true
}

// Position returns the 1-based number of the current question and the total.
func Position(state *SessionState) (int, int) {
	return state.CurrentIndex + 1, len(state.Test.Questions)
}

// HandleAnswer scores a 1-based selection for the current question and moves
// the session into the feedback phase.
func HandleAnswer(state *SessionState, selection int) (*Feedback, error) {
	if state.Phase != PhaseActive {
		return nil, fmt.Errorf("cannot answer in %s phase", state.Phase)
	}
	q, ok := CurrentQuestion(state)
	if !ok {
		return nil, fmt.Errorf("no question at index %d", state.CurrentIndex)
	}
	if selection < 1 || selection > len(q.Choices) {
		return nil, &prompt.RangeError{Value: selection, Min: 1, Max: len(q.Choices)}
	}

	correct := q.IsCorrect(selection)
	state.TotalAnswered++
	if correct {
		state.TotalCorrect++
	}

	fb := &Feedback{
		Number:   state.CurrentIndex + 1,
		Question: q,
		Selected: selection,
		Correct:  correct,
	}
	state.LastFeedback = fb
	state.Phase = PhaseFeedback
	return fb, nil
}

// Advance moves past the feedback for the current question.
// Returns false when there are no more questions and the session is done.
func Advance(state *SessionState) bool {
	if state.Phase == PhaseDone {
		return false
	}
	if state.Phase == PhaseFeedback {
		state.CurrentIndex++
	}
	if state.CurrentIndex >= len(state.Test.Questions) {
		state.Phase = PhaseDone
		state.Elapsed = time.Since(state.StartTime)
		return false
	}
	state.Phase = PhaseActive
	return true
}
