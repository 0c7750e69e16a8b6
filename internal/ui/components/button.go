package components

import (
	"charm.land/lipgloss/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// Button is a labelled choice bound to a single key, such as "[Y] Yes".
type Button struct {
	Key    string
	Label  string
	Active bool
	Theme  theme.Theme
}

// NewButton creates a new button.
func NewButton(th theme.Theme, key, label string, active bool) Button {
	return Button{
		Key:    key,
		Label:  label,
		Active: active,
		Theme:  th,
	}
}

// View renders the button. The active button is drawn in the selected style
// with a marker.
func (b Button) View() string {
	text := "[" + b.Key + "] " + b.Label
	if b.Active {
		return b.Theme.Selected.Render("▸ " + text)
	}
	return b.Theme.Unselected.Render("  " + text)
}

// ButtonRow stacks buttons in a left-aligned block so their keys line up.
func ButtonRow(buttons ...Button) string {
	views := make([]string, len(buttons))
	for i, b := range buttons {
		views[i] = b.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
