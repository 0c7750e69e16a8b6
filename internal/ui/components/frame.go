package components

import (
	"charm.land/lipgloss/v2"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for framed sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame wraps content in a double-border frame, centering it vertically
// and horizontally within the given dimensions. The plain theme centers
// without a border.
func Frame(th theme.Theme, content string, width, height int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	if th.Styled {
		style = style.Border(lipgloss.DoubleBorder()).BorderForeground(th.Primary)
	}
	return style.Render(content)
}

// Card wraps content in the theme's card style at the given content width.
func Card(th theme.Theme, content string, cw int) string {
	return th.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}
