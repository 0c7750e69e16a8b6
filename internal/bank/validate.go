package bank

import (
	"fmt"
	"strings"
)

// validateTests performs all structural checks on a set of tests.
// Returns a combined error describing every problem found, or nil if valid.
func validateTests(tests []Test) error {
	var errs []string

	if len(tests) == 0 {
		errs = append(errs, "no tests defined")
	}

	ids := make(map[string]bool, len(tests))
	for _, t := range tests {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("test %d has an empty ID", t.Number))
		} else if ids[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate test ID: %q", t.ID))
		}
		ids[t.ID] = true

		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Sprintf("test %q has an empty name", t.ID))
		}
		if len(t.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("test %q has no questions", t.ID))
		}

		for i, q := range t.Questions {
			errs = append(errs, validateQuestion(fmt.Sprintf("test %q question %d", t.ID, i+1), q)...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(prefix string, q Question) []string {
	var errs []string

	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, prefix+": question text is empty")
	}
	if len(q.Choices) < 2 {
		errs = append(errs, fmt.Sprintf("%s: needs at least 2 choices, got %d", prefix, len(q.Choices)))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		errs = append(errs, fmt.Sprintf("%s: correct index %d out of range [0, %d)", prefix, q.CorrectIndex, len(q.Choices)))
	}

	seen := make(map[string]bool, len(q.Choices))
	for i, c := range q.Choices {
		c = strings.TrimSpace(c)
		if c == "" {
			errs = append(errs, fmt.Sprintf("%s: choice %d is empty", prefix, i+1))
			continue
		}
		if seen[c] {
			errs = append(errs, fmt.Sprintf("%s: duplicate choice %q", prefix, c))
		}
		seen[c] = true
	}

	return errs
}
