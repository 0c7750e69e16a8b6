package session

import (
	"errors"
	"time"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
)

// ErrEmptyTest is returned when a session is started on a test with no questions.
var ErrEmptyTest = errors.New("test has no questions")

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Waiting for an answer to the current question
	PhaseFeedback                     // Showing the result of the last answer
	PhaseDone                         // All questions answered
)

// String returns a short name for the phase.
func (p SessionPhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFeedback:
		return "feedback"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// SessionState tracks one run through a single test.
type SessionState struct {
	// Test is the test being taken.
	Test bank.Test

	// SessionID identifies this run in logs.
	SessionID string

	// CurrentIndex is the zero-based index of the current question.
	CurrentIndex int

	// TotalCorrect is the running score.
	TotalCorrect int

	// TotalAnswered is the number of questions answered so far.
	TotalAnswered int

	// Phase is the current session phase.
	Phase SessionPhase

	// LastFeedback is the feedback for the most recent answer (nil before the first).
	LastFeedback *Feedback

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed is set when the session finishes.
	Elapsed time.Duration
}

// Feedback describes the outcome of one answer.
type Feedback struct {
	// Number is the 1-based question number.
	Number int

	Question bank.Question

	// Selected is the 1-based choice the user picked.
	Selected int

	Correct bool
}

// CorrectChoice returns the text of the correct option.
func (f Feedback) CorrectChoice() string {
	return f.Question.CorrectChoice()
}

// NewSessionState creates a session positioned at the first question.
func NewSessionState(test bank.Test, sessionID string) (*SessionState, error) {
	if len(test.Questions) == 0 {
		return nil, ErrEmptyTest
	}
	return &SessionState{
		Test:      test,
		SessionID: sessionID,
		Phase:     PhaseActive,
		StartTime: time.Now(),
	}, nil
}
