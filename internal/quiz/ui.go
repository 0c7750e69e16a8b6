// Package quiz drives the quiz over a front-end neutral UI: the Runner takes
// the user through one test and the Controller runs the main menu loop.
package quiz

import (
	"context"
	"fmt"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/grading"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
)

// Prompts shown when the quiz waits for the user.
const (
	PromptStart    = "Press Enter to start the test..."
	PromptContinue = "Press Enter to continue..."
	PromptMenu     = "Press Enter to return to main menu..."
)

// AnswerPrompt is the prompt for answering a question with n choices.
func AnswerPrompt(n int) string {
	return fmt.Sprintf("Enter your answer (1-%d): ", n)
}

// MenuPrompt is the prompt for a main menu with n options.
func MenuPrompt(n int) string {
	return fmt.Sprintf("Enter your choice (1-%d): ", n)
}

// Farewell says how the quiz ended.
type Farewell int

const (
	// FarewellExit follows the Exit menu option.
	FarewellExit Farewell = iota

	// FarewellInterrupted follows an interruption at the menu or at a
	// "Press Enter" prompt.
	FarewellInterrupted

	// FarewellAborted follows an interruption while answering a question.
	FarewellAborted
)

func (f Farewell) String() string {
	switch f {
	case FarewellExit:
		return "exit"
	case FarewellInterrupted:
		return "interrupted"
	case FarewellAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Presenter renders quiz screens.
type Presenter interface {
	// Menu shows the main menu for the given tests, followed by the
	// "Take All Tests" and "Exit" options and the grading legend.
	Menu(tests []bank.Test)

	// InputError reports input that could not be accepted.
	InputError(err error)

	// Intro shows the introduction to a test.
	Intro(test bank.Test)

	// Question shows question n of total with its numbered choices.
	Question(n, total int, q bank.Question)

	// Feedback shows whether the last answer was correct.
	Feedback(fb *session.Feedback)

	// Results shows the graded result of one test.
	Results(sum *session.SessionSummary)

	// Aggregate shows the per-test and overall results of an all-tests run.
	Aggregate(p *session.Progress, outcome grading.Outcome)

	// Farewell shows the goodbye message for how the quiz ended.
	Farewell(kind Farewell)
}

// Input reads the user's responses. Both methods return
// prompt.ErrInterrupted when input ends or ctx is cancelled.
type Input interface {
	// ReadLine shows label and returns the next line without its newline.
	ReadLine(ctx context.Context, label string) (string, error)

	// Pause shows label and waits for the user to press Enter.
	Pause(ctx context.Context, label string) error
}

// UI is a complete front-end.
type UI interface {
	Presenter
	Input
}
