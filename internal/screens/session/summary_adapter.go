package session

import (
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screen"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screens/summary"
	sess "github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
)

// newSummaryScreenAdapter creates the results screen for a finished test.
// next is nil on the last test of the plan.
func (s *SessionScreen) newSummaryScreenAdapter(sum *sess.SessionSummary) screen.Screen {
	return summary.New(s.theme, sum, s.nextScreen())
}

// nextScreen returns a constructor for the screen that follows the results of
// the current test: the next test of the plan, then the overall results when
// the plan is aggregated.
func (s *SessionScreen) nextScreen() func() screen.Screen {
	switch {
	case s.index+1 < len(s.plan.Tests):
		return func() screen.Screen {
			return newSessionScreen(s.theme, s.base, s.plan, s.index+1, s.progress)
		}
	case s.plan.Aggregated():
		return func() screen.Screen {
			return summary.NewOverall(s.theme, s.progress)
		}
	}
	return nil
}
