package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/quiz"
	sess "github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/components"
)

// centered renders text across the full width using style.
func centered(style lipgloss.Style, width int, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}

// renderIntro renders the test introduction.
func (s *SessionScreen) renderIntro(width, height int) string {
	t := s.theme
	test := s.state.Test

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(t.Title, width, fmt.Sprintf("TEST %d: %s", test.Number, test.Heading())))
	b.WriteString("\n\n")
	b.WriteString(centered(t.Info, width, fmt.Sprintf("Welcome to Test %d!", test.Number)))
	b.WriteString("\n")
	b.WriteString(centered(t.Info, width, fmt.Sprintf("This test contains %d multiple choice questions.", test.Len())))
	b.WriteString("\n")
	b.WriteString(centered(t.Info, width, quiz.PassRequirement()))
	b.WriteString("\n\n")
	if len(s.plan.Tests) > 1 {
		b.WriteString(centered(t.Subtitle, width, fmt.Sprintf("Test %d of %d", s.index+1, len(s.plan.Tests))))
		b.WriteString("\n\n")
	}
	b.WriteString(centered(t.Warning, width, "Good luck!"))
	b.WriteString("\n\n")
	b.WriteString(centered(t.Hint, width, quiz.PromptStart))
	return b.String()
}

// renderQuestionView renders the active question.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	t := s.theme
	n, total := sess.Position(s.state)

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(t.Styled).
		Render("  " + s.state.Test.Name)
	infoRight := t.Subtitle.Render(fmt.Sprintf("Question %d/%d", n, total))

	infoLine := infoLeft
	if rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(s.renderChoices(width))
	b.WriteString("\n")
	b.WriteString(centered(t.Hint, width,
		fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(s.choice.Options))))
	return b.String()
}

// renderChoices centers the question and its options as one block.
func (s *SessionScreen) renderChoices(width int) string {
	block := lipgloss.NewStyle().Width(min(width-8, 76)).Render(s.choice.View())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// renderFeedback renders the verdict on the last answer below the graded
// options.
func (s *SessionScreen) renderFeedback(width, height int) string {
	t := s.theme
	fb := s.state.LastFeedback

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderChoices(width))
	b.WriteString("\n")

	if fb.Correct {
		b.WriteString(centered(t.Correct, width, "✓ Correct!"))
	} else {
		b.WriteString(centered(t.Incorrect, width, "✗ Incorrect"))
		b.WriteString("\n")
		b.WriteString(centered(t.Warning, width, "The correct answer was: "+fb.CorrectChoice()))
	}
	b.WriteString("\n\n")

	if fb.Question.Explanation != "" {
		exp := t.Info.Width(min(width-8, 70)).Render("Explanation: " + fb.Question.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(t.Hint, width, quiz.PromptContinue))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func (s *SessionScreen) renderQuitConfirm(width, height int) string {
	t := s.theme

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(t.Strong, width, "End test early?"))
	b.WriteString("\n")
	b.WriteString(centered(t.Subtitle, width, "Answers so far will not be graded."))
	b.WriteString("\n\n")
	buttons := components.ButtonRow(
		components.NewButton(t, "Y", "Yes, back to the menu", false),
		components.NewButton(t, "N", "No, keep going", true),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))
	return b.String()
}

// renderError renders an error message.
func (s *SessionScreen) renderError(width, height int) string {
	return centered(s.theme.Incorrect.UnsetBold(), width,
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
}
