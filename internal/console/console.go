// Package console is the line-mode front-end: it prints quiz screens to a
// writer and reads answers line by line from a reader.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/grading"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/prompt"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/quiz"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

const headerWidth = 70

type line struct {
	text string
	err  error
}

// Console implements quiz.UI over an io.Reader and io.Writer.
type Console struct {
	in    io.Reader
	out   io.Writer
	theme theme.Theme

	start sync.Once
	lines chan line
}

// New creates a Console. Input is read lazily on the first prompt.
func New(in io.Reader, out io.Writer, th theme.Theme) *Console {
	return &Console{
		in:    in,
		out:   out,
		theme: th,
		lines: make(chan line),
	}
}

// scan feeds input lines to the channel until the reader is exhausted.
// It runs on its own goroutine so a pending read can be abandoned when the
// context is cancelled. Lines have no length limit; an oversized answer is
// rejected by the parser like any other.
func (c *Console) scan() {
	defer close(c.lines)
	r := bufio.NewReader(c.in)
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			c.lines <- line{text: strings.TrimSuffix(text, "\n")}
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			c.lines <- line{err: err}
			return
		}
	}
}

// ReadLine prints label and waits for the next line of input.
// End of input and context cancellation both return prompt.ErrInterrupted.
func (c *Console) ReadLine(ctx context.Context, label string) (string, error) {
	c.start.Do(func() { go c.scan() })

	fmt.Fprint(c.out, c.theme.Warning.Render(label))

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", prompt.ErrInterrupted, ctx.Err())
	case l, ok := <-c.lines:
		if !ok {
			return "", prompt.ErrInterrupted
		}
		if l.err != nil {
			return "", fmt.Errorf("read input: %w", l.err)
		}
		return strings.TrimRight(l.text, "\r"), nil
	}
}

// Pause prints label on a new paragraph and waits for Enter.
func (c *Console) Pause(ctx context.Context, label string) error {
	fmt.Fprintln(c.out)
	_, err := c.ReadLine(ctx, label)
	return err
}

// Menu renders the main menu.
func (c *Console) Menu(tests []bank.Test) {
	c.clear()
	c.header(quiz.AppTitle)

	t := c.theme
	c.println(t.Info.Bold(t.Styled).Render(quiz.Author))
	c.println()
	c.println(t.Strong.Render("Select a test to begin:"))
	c.println()
	for _, test := range tests {
		c.printf("  %d. Test %d: %s (%d questions)\n", test.Number, test.Number, test.Name, test.Len())
	}
	c.printf("  %d. Take All Tests\n", len(tests)+1)
	c.printf("  %d. Exit\n", len(tests)+2)

	c.println()
	c.println(t.Warning.Render(quiz.PassingLine()))
	c.println(t.Warning.Render("Grade breakdown: " + quiz.ScaleLegend()))
	c.println()
}

// InputError reports rejected input.
func (c *Console) InputError(err error) {
	c.println(c.theme.Incorrect.Render(prompt.Message(err)))
}

// Intro renders the introduction to a test.
func (c *Console) Intro(test bank.Test) {
	c.clear()
	c.header(fmt.Sprintf("TEST %d: %s", test.Number, test.Heading()))

	t := c.theme
	c.println(t.Info.Render(fmt.Sprintf("Welcome to Test %d!", test.Number)))
	c.println(t.Info.Render(fmt.Sprintf("This test contains %d multiple choice questions.", test.Len())))
	c.println(t.Info.Render(quiz.PassRequirement()))
	c.println()
	c.println(t.Warning.Render("Good luck!"))
}

// Question renders one question and its numbered choices.
func (c *Console) Question(n, total int, q bank.Question) {
	c.clear()

	t := c.theme
	c.println(t.Info.Bold(t.Styled).Render(fmt.Sprintf("Question %d/%d", n, total)))
	c.println(t.Strong.Render(q.Text))
	c.println()
	for i, choice := range q.Choices {
		c.printf("  %d. %s\n", i+1, choice)
	}
	c.println()
}

// Feedback renders the verdict on the last answer.
func (c *Console) Feedback(fb *session.Feedback) {
	t := c.theme
	if fb.Correct {
		c.println(t.Correct.Render("✓ Correct!"))
	} else {
		c.println(t.Incorrect.Render("✗ Incorrect"))
		c.println(t.Warning.Render("The correct answer was: " + fb.CorrectChoice()))
	}
	if fb.Question.Explanation != "" {
		c.println(t.Info.Render("Explanation: " + fb.Question.Explanation))
	}
}

// Results renders the graded result of one test.
func (c *Console) Results(sum *session.SessionSummary) {
	c.clear()
	c.header(strings.ToUpper(sum.TestName) + " - RESULTS")

	t := c.theme
	c.println(t.Strong.Render(fmt.Sprintf("Your Score: %d/%d", sum.Result.Score, sum.Result.Total)))
	c.println(t.Strong.Render(fmt.Sprintf("Percentage: %.1f%%", sum.Outcome.Percentage)))
	c.println(t.Strong.Render(fmt.Sprintf("Grade: %s", sum.Outcome.Letter)))

	c.println()
	if sum.Outcome.Passed {
		c.println(t.Correct.Render("🎉 CONGRATULATIONS! YOU PASSED! 🎉"))
	} else {
		c.println(t.Incorrect.Render("Unfortunately, you did not pass this time."))
		c.println(t.Warning.Render("Keep studying and try again!"))
	}

	c.println()
	c.println(t.Info.Render("Performance Analysis:"))
	c.println(sum.Comment)
}

// Aggregate renders the per-test and overall results of an all-tests run.
func (c *Console) Aggregate(p *session.Progress, outcome grading.Outcome) {
	c.clear()
	c.header("OVERALL RESULTS - ALL TESTS")

	t := c.theme
	c.println()
	for _, r := range p.Results {
		c.println(t.Strong.Render(fmt.Sprintf("Test %d Score: %d/%d (%.1f%%)",
			r.Number, r.Result.Score, r.Result.Total, r.Result.Percentage())))
	}

	total := p.Total()
	c.println()
	c.println(t.Info.Bold(t.Styled).Render(fmt.Sprintf("TOTAL SCORE: %d/%d (%.1f%%)",
		total.Score, total.Total, total.Percentage())))
	c.println(t.Strong.Render(fmt.Sprintf("Overall Grade: %s", outcome.Letter)))

	c.println()
	if outcome.Passed {
		c.println(t.Correct.Render("🎉 OVERALL: PASSED! 🎉"))
	} else {
		c.println(t.Incorrect.Render("OVERALL: NOT PASSED"))
	}
}

// Farewell renders the goodbye message. Aborting a question prints only the
// interruption notice; other endings clear the screen and thank the user.
func (c *Console) Farewell(kind quiz.Farewell) {
	t := c.theme
	if kind == quiz.FarewellAborted {
		c.println()
		c.println(t.Incorrect.UnsetBold().Render(quiz.InterruptedLine))
		return
	}

	c.clear()
	c.println()
	c.println(t.Correct.UnsetBold().Render(quiz.ThankYouLine))
	if kind == quiz.FarewellExit {
		c.println(t.Info.Render(quiz.StudyLine))
	}
	c.println()
}

// header prints text centered between two rules.
func (c *Console) header(text string) {
	rule := strings.Repeat("=", headerWidth)
	title := c.theme.Title
	c.println()
	c.println(title.Render(rule))
	c.println(title.Render(lipgloss.PlaceHorizontal(headerWidth, lipgloss.Center, text)))
	c.println(title.Render(rule))
	c.println()
}

// clear wipes the terminal. The plain theme never clears so that output
// stays readable when piped or logged.
func (c *Console) clear() {
	if !c.theme.Styled {
		return
	}
	fmt.Fprint(c.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
