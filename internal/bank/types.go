package bank

import "strings"

// Question is a single multiple-choice item.
type Question struct {
	// Text is the prompt shown to the user.
	Text string `json:"question"`

	// Choices are displayed in this order, numbered from 1.
	Choices []string `json:"choices"`

	// CorrectIndex is the zero-based index of the correct entry in Choices.
	CorrectIndex int `json:"correct"`

	// Explanation is shown after the answer is revealed. May be empty.
	Explanation string `json:"explanation,omitempty"`
}

// CorrectChoice returns the text of the correct option.
func (q Question) CorrectChoice() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return ""
	}
	return q.Choices[q.CorrectIndex]
}

// IsCorrect reports whether the 1-based selection is the correct option.
func (q Question) IsCorrect(selection int) bool {
	return selection-1 == q.CorrectIndex
}

// Test is a named, ordered set of questions.
type Test struct {
	// ID is a stable slug, unique within a catalog.
	ID string `json:"id"`

	// Name is the display name, e.g. "Public Sector Economics - Part 1".
	Name string `json:"name"`

	// Number is the 1-based position of the test in its catalog.
	Number int `json:"-"`

	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the test.
func (t Test) Len() int {
	return len(t.Questions)
}

// Heading returns the upper-cased name used in screen headers.
func (t Test) Heading() string {
	return strings.ToUpper(t.Name)
}
