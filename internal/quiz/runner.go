package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/grading"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/prompt"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
)

// errAnswerAborted marks an interruption at the answer prompt.
var errAnswerAborted = errors.New("aborted while answering")

// Runner takes the user through a single test.
type Runner struct {
	ui     UI
	logger *slog.Logger
	newID  func() string
}

// NewRunner creates a Runner. A nil logger discards all records.
func NewRunner(ui UI, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		ui:     ui,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// RunTest shows the intro, asks every question in order with feedback after
// each answer, then shows the graded result. It returns the score and the
// number of questions. An interruption at any prompt returns the error
// from the UI and no result; at the answer prompt it also wraps
// errAnswerAborted.
func (r *Runner) RunTest(ctx context.Context, test bank.Test) (grading.Result, error) {
	id := r.newID()
	log := r.logger.With("session_id", id, "test", test.ID)

	state, err := session.NewSessionState(test, id)
	if err != nil {
		return grading.Result{}, fmt.Errorf("start test %q: %w", test.ID, err)
	}

	r.ui.Intro(test)
	if err := r.ui.Pause(ctx, PromptStart); err != nil {
		return grading.Result{}, err
	}
	log.Info("test started", "questions", test.Len())

	for {
		q, ok := session.CurrentQuestion(state)
		if !ok {
			break
		}
		n, total := session.Position(state)
		r.ui.Question(n, total, q)

		sel, err := r.choose(ctx, AnswerPrompt(len(q.Choices)), 1, len(q.Choices))
		if err != nil {
			log.Info("test interrupted", "question", n, "score", state.TotalCorrect)
			if prompt.Interrupted(err) {
				return grading.Result{}, fmt.Errorf("%w: %w", errAnswerAborted, err)
			}
			return grading.Result{}, err
		}

		fb, err := session.HandleAnswer(state, sel)
		if err != nil {
			return grading.Result{}, fmt.Errorf("answer question %d: %w", n, err)
		}
		log.Debug("question answered", "question", n, "selection", sel, "correct", fb.Correct)

		r.ui.Feedback(fb)
		if err := r.ui.Pause(ctx, PromptContinue); err != nil {
			log.Info("test interrupted", "question", n, "score", state.TotalCorrect)
			return grading.Result{}, err
		}
		session.Advance(state)
	}

	sum, err := session.BuildSummary(state)
	if err != nil {
		return grading.Result{}, fmt.Errorf("grade test %q: %w", test.ID, err)
	}
	log.Info("test finished",
		"score", sum.Result.Score,
		"total", sum.Result.Total,
		"grade", sum.Outcome.Letter,
		"passed", sum.Outcome.Passed,
		"duration", sum.Duration,
	)

	r.ui.Results(sum)
	if err := r.ui.Pause(ctx, PromptContinue); err != nil {
		return grading.Result{}, err
	}
	return sum.Result, nil
}

// choose reads lines until one parses as a number in [min, max].
// Rejected input is reported and the prompt repeated.
func (r *Runner) choose(ctx context.Context, label string, min, max int) (int, error) {
	for {
		raw, err := r.ui.ReadLine(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := prompt.ParseChoice(raw, min, max)
		if err == nil {
			return n, nil
		}
		if !prompt.Recoverable(err) {
			return 0, err
		}
		r.logger.Debug("answer rejected", "input", raw, "err", err)
		r.ui.InputError(err)
	}
}
