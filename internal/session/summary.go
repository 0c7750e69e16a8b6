package session

import (
	"time"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/grading"
)

// SessionSummary holds the data displayed on the results screen.
type SessionSummary struct {
	TestID   string
	TestName string
	Number   int
	Duration time.Duration
	Result   grading.Result
	Outcome  grading.Outcome
	Comment  string
}

// BuildSummary grades the session. Total is the number of questions in the
// test, not the number answered.
func BuildSummary(state *SessionState) (*SessionSummary, error) {
	res := grading.Result{
		Score: state.TotalCorrect,
		Total: len(state.Test.Questions),
	}
	outcome, err := grading.GradeResult(res)
	if err != nil {
		return nil, err
	}

	return &SessionSummary{
		TestID:   state.Test.ID,
		TestName: state.Test.Name,
		Number:   state.Test.Number,
		Duration: state.Elapsed,
		Result:   res,
		Outcome:  outcome,
		Comment:  grading.Comment(outcome.Percentage),
	}, nil
}
