package session

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/router"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screen"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/screens/summary"
	sess "github.com/dimerciabaruani-tech/economics-quiz-app/internal/session"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testBank(number, questions int) bank.Test {
	t := bank.Test{
		ID:     "test-" + string(rune('0'+number)),
		Name:   "Sample Test",
		Number: number,
	}
	for i := 0; i < questions; i++ {
		t.Questions = append(t.Questions, bank.Question{
			Text:         "Which option is correct?",
			Choices:      []string{"Right", "Wrong", "Also wrong", "Still wrong"},
			CorrectIndex: 0,
			Explanation:  "The first option is always right here.",
		})
	}
	return t
}

func singlePlan(questions int) *sess.Plan {
	return sess.SingleTestPlan(testBank(1, questions))
}

// started returns a screen past the intro, on the first question.
func started(t *testing.T, plan *sess.Plan) *SessionScreen {
	t.Helper()
	s := New(theme.Plain(), nil, plan)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected the clock to start on Enter")
	}
	if !s.started {
		t.Fatal("expected the test to start on Enter")
	}
	return s
}

func answerAll(t *testing.T, s *SessionScreen, r rune) screen.Screen {
	t.Helper()
	for {
		s.Update(keyPress(r))
		if s.state.Phase != sess.PhaseFeedback {
			t.Fatalf("phase = %s after answering, want feedback", s.state.Phase)
		}
		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if cmd == nil {
			t.Fatal("expected a command when dismissing feedback")
		}
		_, cmd = s.Update(cmd())
		if cmd == nil {
			continue
		}
		_, cmd = s.Update(cmd())
		if cmd == nil {
			t.Fatal("expected navigation after the last question")
		}
		msg, ok := cmd().(router.ReplaceScreenMsg)
		if !ok {
			t.Fatalf("got %T, want router.ReplaceScreenMsg", cmd())
		}
		return msg.Screen
	}
}

func TestSessionScreen_Intro(t *testing.T) {
	s := New(theme.Plain(), nil, singlePlan(3))

	if s.Title() != "Test 1" {
		t.Errorf("Title = %q, want %q", s.Title(), "Test 1")
	}
	if s.Status() != "" {
		t.Errorf("Status before start = %q, want empty", s.Status())
	}

	view := s.View(80, 24)
	for _, want := range []string{
		"TEST 1: SAMPLE TEST",
		"Welcome to Test 1!",
		"This test contains 3 multiple choice questions.",
		"You need 50% to pass",
		"Press Enter to start the test...",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("intro view missing %q", want)
		}
	}
}

func TestSessionScreen_IntroEscGoesHome(t *testing.T) {
	s := New(theme.Plain(), nil, singlePlan(3))
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("got %T, want router.PopToRootMsg", cmd())
	}
}

func TestSessionScreen_QuestionView(t *testing.T) {
	s := started(t, singlePlan(3))

	view := s.View(80, 24)
	for _, want := range []string{"Question 1/3", "Which option is correct?", "1. Right", "4. Still wrong", "Select (1-4)"} {
		if !strings.Contains(view, want) {
			t.Errorf("question view missing %q", want)
		}
	}
	if !strings.HasPrefix(s.Status(), "Q 1/3  ✓ 0/0") {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestSessionScreen_CorrectAnswer(t *testing.T) {
	s := started(t, singlePlan(3))
	s.Update(keyPress('1'))

	if s.state.Phase != sess.PhaseFeedback {
		t.Fatalf("phase = %s, want feedback", s.state.Phase)
	}
	if s.state.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d, want 1", s.state.TotalCorrect)
	}
	if !strings.HasPrefix(s.Status(), "Q 1/3  ✓ 1/1") {
		t.Errorf("Status = %q, want 1 correct of 1 answered", s.Status())
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "✓ Correct!") {
		t.Error("expected correct feedback")
	}
	if !strings.Contains(view, "Explanation: The first option") {
		t.Error("expected explanation")
	}
	if !strings.Contains(view, "Press Enter to continue...") {
		t.Error("expected continue prompt")
	}
}

func TestSessionScreen_IncorrectAnswer(t *testing.T) {
	s := started(t, singlePlan(3))
	s.Update(keyPress('3'))

	if s.state.TotalCorrect != 0 {
		t.Errorf("TotalCorrect = %d, want 0", s.state.TotalCorrect)
	}
	if !strings.HasPrefix(s.Status(), "Q 1/3  ✓ 0/1") {
		t.Errorf("Status = %q, want 0 correct of 1 answered", s.Status())
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "✗ Incorrect") {
		t.Error("expected incorrect feedback")
	}
	if !strings.Contains(view, "The correct answer was: Right") {
		t.Error("expected correct answer to be shown")
	}
}

func TestSessionScreen_ArrowsAndEnter(t *testing.T) {
	s := started(t, singlePlan(3))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	if s.state.Phase != sess.PhaseFeedback {
		t.Fatalf("phase = %s, want feedback", s.state.Phase)
	}
	if s.state.LastFeedback.Selected != 2 {
		t.Errorf("Selected = %d, want 2", s.state.LastFeedback.Selected)
	}
}

func TestSessionScreen_OutOfRangeDigitIgnored(t *testing.T) {
	s := started(t, singlePlan(3))
	s.Update(keyPress('9'))

	if s.state.Phase != sess.PhaseActive {
		t.Errorf("phase = %s, want active", s.state.Phase)
	}
	if s.state.TotalAnswered != 0 {
		t.Errorf("TotalAnswered = %d, want 0", s.state.TotalAnswered)
	}
}

func TestSessionScreen_FeedbackAdvances(t *testing.T) {
	s := started(t, singlePlan(3))
	s.Update(keyPress('1'))

	// Other keys leave the feedback on screen.
	if _, cmd := s.Update(keyPress('x')); cmd != nil {
		t.Error("expected no command for an unrelated key")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Fatalf("got %T, want feedbackDoneMsg", cmd())
	}
	s.Update(feedbackDoneMsg{})

	if s.state.Phase != sess.PhaseActive {
		t.Errorf("phase = %s, want active", s.state.Phase)
	}
	if !strings.Contains(s.View(80, 24), "Question 2/3") {
		t.Error("expected the second question")
	}
}

func TestSessionScreen_FinishSingleTest(t *testing.T) {
	plan := singlePlan(2)
	s := started(t, plan)
	next := answerAll(t, s, '1')

	sum, ok := next.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("got %T, want *summary.SummaryScreen", next)
	}
	if !strings.Contains(sum.View(80, 24), "Your Score: 2/2") {
		t.Error("expected a perfect score on the results screen")
	}
	if len(s.progress.Results) != 1 {
		t.Errorf("recorded %d results, want 1", len(s.progress.Results))
	}

	// A single-test plan returns to the menu after the results.
	_, cmd := sum.Update(specialKey(tea.KeyEnter))
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("got %T, want router.PopToRootMsg", cmd())
	}
}

func TestSessionScreen_AllTestsPlan(t *testing.T) {
	catalog, err := bank.NewCatalog([]bank.Test{
		{ID: "one", Name: "One", Questions: testBank(1, 2).Questions},
		{ID: "two", Name: "Two", Questions: testBank(2, 2).Questions},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	plan := sess.AllTestsPlan(catalog)

	s := started(t, plan)
	next := answerAll(t, s, '1')

	// Results of test 1 lead to test 2.
	_, cmd := next.Update(specialKey(tea.KeyEnter))
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want router.ReplaceScreenMsg", cmd())
	}
	second, ok := msg.Screen.(*SessionScreen)
	if !ok {
		t.Fatalf("got %T, want *SessionScreen", msg.Screen)
	}
	if second.Title() != "Test 2" {
		t.Errorf("Title = %q, want Test 2", second.Title())
	}
	if !strings.Contains(second.View(80, 24), "Test 2 of 2") {
		t.Error("expected plan position on the intro")
	}

	second.Update(specialKey(tea.KeyEnter))
	next = answerAll(t, second, '2')

	// Results of the last test lead to the overall results.
	_, cmd = next.Update(specialKey(tea.KeyEnter))
	msg, ok = cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want router.ReplaceScreenMsg", cmd())
	}
	overall, ok := msg.Screen.(*summary.OverallScreen)
	if !ok {
		t.Fatalf("got %T, want *summary.OverallScreen", msg.Screen)
	}
	view := overall.View(80, 24)
	if !strings.Contains(view, "TOTAL SCORE: 2/4 (50.0%)") {
		t.Errorf("overall view missing total:\n%s", view)
	}
	if !strings.Contains(view, "Overall Grade: D") {
		t.Error("expected overall grade D")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := started(t, singlePlan(3))

	s.Update(specialKey(tea.KeyEscape))
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation on Esc")
	}
	if view := s.View(80, 24); !strings.Contains(view, "End test early?") || !strings.Contains(view, "[Y] Yes") {
		t.Error("expected quit confirmation view")
	}

	s.Update(keyPress('n'))
	if s.showingQuitConfirm {
		t.Fatal("expected N to dismiss the confirmation")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command on Y")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("got %T, want router.PopToRootMsg", cmd())
	}
	if len(s.progress.Results) != 0 {
		t.Error("abandoned test must not be recorded")
	}
}

func TestSessionScreen_EmptyTest(t *testing.T) {
	s := New(theme.Plain(), nil, sess.SingleTestPlan(bank.Test{ID: "empty", Name: "Empty", Number: 1}))

	if !strings.Contains(s.View(80, 24), "Error:") {
		t.Error("expected an error view")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command on any key")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("got %T, want router.PopToRootMsg", cmd())
	}
}

func TestSessionScreen_TimerTick(t *testing.T) {
	s := started(t, singlePlan(3))

	_, cmd := s.Update(timerTickMsg(s.state.StartTime.Add(75 * time.Second)))
	if cmd == nil {
		t.Error("expected the clock to keep ticking")
	}
	if !strings.HasSuffix(s.Status(), "1:15  ") {
		t.Errorf("Status = %q, want elapsed 1:15", s.Status())
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := New(theme.Plain(), nil, singlePlan(3))
	if len(s.KeyHints()) == 0 {
		t.Error("expected intro key hints")
	}

	s.Update(specialKey(tea.KeyEnter))
	if len(s.KeyHints()) == 0 {
		t.Error("expected question key hints")
	}

	s.Update(specialKey(tea.KeyEscape))
	hints := s.KeyHints()
	if len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("quit confirm hints = %v", hints)
	}
}
