package session

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/router"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screen"
	sess "github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/components"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/layout"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// SessionScreen implements screen.Screen for one test of a plan.
type SessionScreen struct {
	theme    theme.Theme
	base     *slog.Logger
	logger   *slog.Logger
	plan     *sess.Plan
	index    int
	progress *sess.Progress

	state   *sess.SessionState
	choice  components.MultiChoice
	keys    components.KeyMap
	started bool
	elapsed time.Duration

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for the first test of plan.
func New(th theme.Theme, logger *slog.Logger, plan *sess.Plan) *SessionScreen {
	return newSessionScreen(th, logger, plan, 0, &sess.Progress{})
}

func newSessionScreen(th theme.Theme, logger *slog.Logger, plan *sess.Plan, index int, progress *sess.Progress) *SessionScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &SessionScreen{
		theme:    th,
		base:     logger,
		plan:     plan,
		index:    index,
		progress: progress,
		keys:     components.DefaultKeyMap(),
	}
	if index >= len(plan.Tests) {
		s.logger = logger
		s.errMsg = "no test to run"
		return s
	}

	test := plan.Tests[index]
	id := uuid.NewString()
	s.logger = logger.With("session_id", id, "test", test.ID)

	state, err := sess.NewSessionState(test, id)
	if err != nil {
		s.errMsg = fmt.Sprintf("test %d: %v", test.Number, err)
		return s
	}
	s.state = state
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	if s.state == nil {
		return "Quiz"
	}
	return fmt.Sprintf("Test %d", s.state.Test.Number)
}

// Status shows the question counter, correct over answered and the clock.
func (s *SessionScreen) Status() string {
	if s.state == nil || !s.started {
		return ""
	}
	n, total := sess.Position(s.state)
	if n > total {
		n = total
	}
	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60
	return fmt.Sprintf("Q %d/%d  ✓ %d/%d  %d:%02d  ", n, total, s.state.TotalCorrect, s.state.TotalAnswered, mins, secs)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	quit := key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit"))
	if !s.started {
		start := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Start"))
		return components.Hints(start, s.keys.Back)
	}
	if s.state.Phase == sess.PhaseFeedback {
		next := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Continue"))
		return components.Hints(next, quit)
	}
	pick := key.NewBinding(key.WithKeys("1"), key.WithHelp(fmt.Sprintf("1-%d", len(s.choice.Options)), "Answer"))
	return components.Hints(s.keys.Up, s.keys.Down, s.keys.Select, pick, quit)
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width, height)
	}
	if s.showingQuitConfirm {
		return s.renderQuitConfirm(width, height)
	}
	if !s.started {
		return s.renderIntro(width, height)
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || !s.started || s.state.Phase == sess.PhaseDone {
		return s, nil
	}
	s.elapsed = time.Time(msg).Sub(s.state.StartTime)
	return s, tickCmd()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase != sess.PhaseFeedback {
		return s, nil
	}
	if !sess.Advance(s.state) {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.resetChoice()
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	sum, err := sess.BuildSummary(s.state)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.progress.Record(s.state.Test, sum.Result)
	s.logger.Info("test finished",
		"score", sum.Result.Score,
		"total", sum.Result.Total,
		"grade", sum.Outcome.Letter,
		"passed", sum.Outcome.Passed,
		"duration", sum.Duration,
	)

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s.newSummaryScreenAdapter(sum)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	if s.showingQuitConfirm {
		switch msg.String() {
		case "y", "Y":
			s.showingQuitConfirm = false
			n, _ := sess.Position(s.state)
			s.logger.Info("test abandoned", "question", n, "score", s.state.TotalCorrect)
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if !s.started {
		switch {
		case key.Matches(msg, s.keys.Back):
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case key.Matches(msg, s.keys.Select):
			return s, s.start()
		}
		return s, nil
	}

	if key.Matches(msg, s.keys.Back) {
		s.showingQuitConfirm = true
		return s, nil
	}

	switch s.state.Phase {
	case sess.PhaseFeedback:
		if key.Matches(msg, s.keys.Select) {
			return s, func() tea.Msg { return feedbackDoneMsg{} }
		}
	case sess.PhaseActive:
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.submitAnswer()
		}
	}
	return s, nil
}

// start leaves the intro and shows the first question.
func (s *SessionScreen) start() tea.Cmd {
	s.started = true
	s.state.StartTime = time.Now()
	s.resetChoice()
	s.logger.Info("test started", "questions", s.state.Test.Len())
	return tickCmd()
}

// submitAnswer scores the choice the learner just made.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	n, _ := sess.Position(s.state)
	fb, err := sess.HandleAnswer(s.state, s.choice.Selection())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.logger.Debug("question answered", "question", n, "selection", fb.Selected, "correct", fb.Correct)
	return s, nil
}

func (s *SessionScreen) resetChoice() {
	q, ok := sess.CurrentQuestion(s.state)
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(s.theme, q.Text, q.Choices, q.CorrectIndex)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
