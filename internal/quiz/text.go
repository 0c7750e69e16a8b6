package quiz

import (
	"fmt"
	"strings"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/grading"
)

const (
	// AppTitle is the banner shown above the main menu.
	AppTitle = "ECONOMICS 1 QUIZ APPLICATION"

	// Author is credited under the banner.
	Author = "By Sophie Kasse"
)

// Farewell texts.
const (
	ThankYouLine    = "Thank you for using the Economics 1 Quiz Application!"
	StudyLine       = "Keep studying and good luck with your exams!"
	InterruptedLine = "Quiz interrupted. Exiting..."
)

// PassingLine is the menu reminder of the pass mark.
func PassingLine() string {
	return fmt.Sprintf("Passing grade: %d%% or higher", grading.PassingPercentage)
}

// ScaleLegend renders the grading scale highest first: "75%+=A, 70%+=B, ...".
func ScaleLegend() string {
	scale := grading.Scale()
	parts := make([]string, len(scale))
	for i, th := range scale {
		parts[i] = fmt.Sprintf("%d%%+=%s", th.MinPercentage, th.Letter)
	}
	return strings.Join(parts, ", ")
}

// IntroLegend renders the grading scale lowest first, marking only the top
// band as open ended: "50% = D, 60% = C, 70% = B, 75%+ = A".
func IntroLegend() string {
	scale := grading.Scale()
	parts := make([]string, 0, len(scale))
	for i := len(scale) - 1; i >= 0; i-- {
		th := scale[i]
		if i == 0 {
			parts = append(parts, fmt.Sprintf("%d%%+ = %s", th.MinPercentage, th.Letter))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%% = %s", th.MinPercentage, th.Letter))
	}
	return strings.Join(parts, ", ")
}

// PassRequirement is the intro line stating the pass mark and scale.
func PassRequirement() string {
	return fmt.Sprintf("You need %d%% to pass (%s)", grading.PassingPercentage, IntroLegend())
}
