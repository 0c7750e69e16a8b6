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

// OverallScreen displays the combined results of an all-tests run.
type OverallScreen struct {
	theme    theme.Theme
	progress *session.Progress
	keys     components.KeyMap
}

var _ screen.Screen = (*OverallScreen)(nil)
var _ screen.KeyHintProvider = (*OverallScreen)(nil)

// NewOverall creates an OverallScreen for the recorded progress.
func NewOverall(th theme.Theme, progress *session.Progress) *OverallScreen {
	return &OverallScreen{
		theme:    th,
		progress: progress,
		keys:     components.DefaultKeyMap(),
	}
}

func (s *OverallScreen) Init() tea.Cmd {
	return nil
}

func (s *OverallScreen) Title() string {
	return "Overall Results"
}

func (s *OverallScreen) KeyHints() []layout.KeyHint {
	return components.Hints(key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Menu")))
}

func (s *OverallScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if key.Matches(kmsg, s.keys.Select, s.keys.Back) {
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *OverallScreen) View(width, height int) string {
	t := s.theme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(t.Title, width, "OVERALL RESULTS - ALL TESTS"))
	b.WriteString("\n\n")

	outcome, err := s.progress.Outcome()
	if err != nil {
		b.WriteString(centered(t.Subtitle, width, "No tests were completed."))
		return b.String()
	}

	barWidth := min(width-8, 60)
	for _, r := range s.progress.Results {
		label := fmt.Sprintf("Test %d  %2d/%d", r.Number, r.Result.Score, r.Result.Total)
		bar := components.NewProgressBar(t, label, r.Result.Percentage()/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	total := s.progress.Total()
	b.WriteString("\n")
	b.WriteString(centered(t.Strong, width, fmt.Sprintf("TOTAL SCORE: %d/%d (%.1f%%)",
		total.Score, total.Total, total.Percentage())))
	b.WriteString("\n")
	b.WriteString(centered(t.Strong, width, fmt.Sprintf("Overall Grade: %s", outcome.Letter)))
	b.WriteString("\n\n")

	if outcome.Passed {
		b.WriteString(centered(t.Correct, width, "🎉 OVERALL: PASSED! 🎉"))
	} else {
		b.WriteString(centered(t.Incorrect, width, "OVERALL: NOT PASSED"))
	}
	return b.String()
}
