package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/router"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screen"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/components"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/layout"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// SummaryScreen displays the graded result of one test.
type SummaryScreen struct {
	theme   theme.Theme
	summary *session.SessionSummary
	next    func() screen.Screen
	keys    components.KeyMap
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. next builds the screen shown on Enter; when
// nil, Enter returns to the main menu.
func New(th theme.Theme, summary *session.SessionSummary, next func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{
		theme:   th,
		summary: summary,
		next:    next,
		keys:    components.DefaultKeyMap(),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	cont := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Continue"))
	home := key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Menu"))
	if s.next == nil {
		cont.SetHelp("Enter", "Menu")
		return components.Hints(cont)
	}
	return components.Hints(cont, home)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, s.keys.Select):
		if s.next != nil {
			next := s.next()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case key.Matches(kmsg, s.keys.Back):
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	t := s.theme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(t.Title, width, strings.ToUpper(sum.TestName)+" - RESULTS"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(centered(t.Subtitle, width, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(centered(t.Strong, width, fmt.Sprintf("Your Score: %d/%d", sum.Result.Score, sum.Result.Total)))
	b.WriteString("\n")
	b.WriteString(centered(t.Strong, width, fmt.Sprintf("Percentage: %.1f%%", sum.Outcome.Percentage)))
	b.WriteString("\n")
	b.WriteString(centered(t.Strong, width, fmt.Sprintf("Grade: %s", sum.Outcome.Letter)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar(t, "", sum.Outcome.Percentage/100, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if sum.Outcome.Passed {
		b.WriteString(centered(t.Correct, width, "🎉 CONGRATULATIONS! YOU PASSED! 🎉"))
	} else {
		b.WriteString(centered(t.Incorrect, width, "Unfortunately, you did not pass this time."))
		b.WriteString("\n")
		b.WriteString(centered(t.Warning, width, "Keep studying and try again!"))
	}
	b.WriteString("\n\n")

	b.WriteString(centered(t.Info, width, "Performance Analysis:"))
	b.WriteString("\n")
	b.WriteString(centered(t.Body, width, sum.Comment))
	return b.String()
}

// centered renders text across the full width using style.
func centered(style lipgloss.Style, width int, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
