package home

import (
	"charm.land/lipgloss/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/quiz"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/components"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// renderTitle returns the banner, with the author credit in full mode.
func renderTitle(th theme.Theme, cw int, compact bool) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	if compact {
		return center.Render(th.Title.Render(quiz.AppTitle))
	}
	return center.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			th.Banner.Render(quiz.AppTitle),
			th.Info.Render(quiz.Author),
		),
	)
}

// renderMenu places the menu under its heading, left-aligned in a centered
// block so the numbers line up.
func renderMenu(th theme.Theme, menu string, cw int) string {
	block := lipgloss.JoinVertical(lipgloss.Left,
		th.Strong.Render("Select a test to begin:"),
		"",
		menu,
	)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, block)
}

// renderLegend renders the pass mark and grade scale in a box matching
// content width.
func renderLegend(th theme.Theme, cw int) string {
	text := lipgloss.JoinVertical(lipgloss.Center,
		th.Warning.Render(quiz.PassingLine()),
		th.Warning.Render("Grade breakdown: "+quiz.ScaleLegend()),
	)
	return components.Card(th, text, cw)
}
