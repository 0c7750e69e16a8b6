package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme is the set of colors and styles shared by both front-ends.
// A Theme is a plain value; pass it to whatever renders output.
type Theme struct {
	// Styled is false for the plain theme. Adapters skip screen clearing
	// and decoration when it is false.
	Styled bool

	// Color palette
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Strong   lipgloss.Style
	Hint     lipgloss.Style

	// Layout
	Banner lipgloss.Style
	Card   lipgloss.Style

	// States
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style

	// Components
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
}

// Default returns the colored theme.
func Default() Theme {
	t := Theme{
		Styled:    true,
		Primary:   lipgloss.Color("#2563EB"), // Blue
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F59E0B"), // Amber
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.TextDim)
	t.Body = lipgloss.NewStyle().Foreground(t.Text)
	t.Strong = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Hint = lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)

	t.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(0, 2)
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Selected = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.Unselected = lipgloss.NewStyle().Foreground(t.Text)
	t.Correct = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	t.Incorrect = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(t.Accent)
	t.Info = lipgloss.NewStyle().Foreground(t.Secondary)

	t.ProgressFilled = lipgloss.NewStyle().Background(t.Secondary)
	t.ProgressEmpty = lipgloss.NewStyle().Background(t.Border)
	return t
}

// Plain returns a theme that renders text unchanged: no colors, no borders,
// no screen clearing. Used when NO_COLOR is set or stdout is not a terminal.
func Plain() Theme {
	none := lipgloss.NoColor{}
	s := lipgloss.NewStyle()
	return Theme{
		Primary:   none,
		Secondary: none,
		Accent:    none,
		Success:   none,
		Error:     none,
		Text:      none,
		TextDim:   none,
		BgCard:    none,
		Border:    none,

		Title:    s,
		Subtitle: s,
		Body:     s,
		Strong:   s,
		Hint:     s,

		Banner: s,
		Card:   s,

		Selected:   s,
		Unselected: s,
		Correct:    s,
		Incorrect:  s,
		Warning:    s,
		Info:       s,

		ProgressFilled: s,
		ProgressEmpty:  s,
	}
}

// For returns Default when styled is true and Plain otherwise.
func For(styled bool) Theme {
	if styled {
		return Default()
	}
	return Plain()
}
