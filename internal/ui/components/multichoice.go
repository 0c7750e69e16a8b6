package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Options are numbered from 1.
// After submission it highlights the correct option and the chosen one.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
	Keys         KeyMap
	Theme        theme.Theme
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(th theme.Theme, question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
		Keys:         DefaultKeyMap(),
		Theme:        th,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Typing an option's
// number submits it immediately.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, m.Keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, m.Keys.Select):
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if n := digit(kmsg.String()); n > 0 && n <= len(m.Options) {
			m.Selected = n - 1
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	}

	return m, nil
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(m.Theme.Strong.Render(m.Question) + "\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d. %s", prefix, i+1, opt)

		style := m.Theme.Unselected
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = m.Theme.Correct
		case m.Submitted && i == m.ChosenIndex:
			style = m.Theme.Incorrect
		case m.Submitted:
			style = m.Theme.Subtitle
		case i == m.Selected:
			style = m.Theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

// Selection returns the 1-based option the user submitted, or 0 before
// submission.
func (m MultiChoice) Selection() int {
	if !m.Submitted {
		return 0
	}
	return m.ChosenIndex + 1
}
