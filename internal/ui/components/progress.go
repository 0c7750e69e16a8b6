package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Theme       theme.Theme
}

// NewProgressBar creates a new progress bar. percent is a fraction in [0, 1].
func NewProgressBar(th theme.Theme, label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Theme:       th,
	}
}

// View renders the progress bar. The plain theme draws the bar with
// '#' and '-' since it has no background colors.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += p.Theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillChar, emptyChar := " ", " "
	if !p.Theme.Styled {
		fillChar, emptyChar = "#", "-"
	}

	result += p.Theme.ProgressFilled.Render(strings.Repeat(fillChar, filled)) +
		p.Theme.ProgressEmpty.Render(strings.Repeat(emptyChar, empty))

	if p.ShowPercent {
		result += p.Theme.Subtitle.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
