package grading

import (
	"errors"
	"fmt"
)

// ErrNoQuestions is returned when a result with zero questions is graded.
var ErrNoQuestions = errors.New("cannot grade a result with zero questions")

// Letter is a letter grade.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterF Letter = "F"
)

// Threshold is one row of the grading scale.
type Threshold struct {
	MinPercentage int
	Letter        Letter
}

// scale is evaluated highest-first; lower bounds are inclusive.
var scale = [...]Threshold{
	{MinPercentage: 75, Letter: LetterA},
	{MinPercentage: 70, Letter: LetterB},
	{MinPercentage: 60, Letter: LetterC},
	{MinPercentage: 50, Letter: LetterD},
}

// PassingPercentage is the lowest percentage that still passes.
const PassingPercentage = 50

// Scale returns the passing rows of the grading scale, highest first.
// Anything below the last row is an F.
func Scale() []Threshold {
	out := make([]Threshold, len(scale))
	copy(out, scale[:])
	return out
}

// Result is the outcome of running one test (or the sum of several).
type Result struct {
	Score int
	Total int
}

// Percentage returns Score/Total*100, or 0 for an empty result.
func (r Result) Percentage() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}

// Sum adds up scores and totals across results.
func Sum(results ...Result) Result {
	var out Result
	for _, r := range results {
		out.Score += r.Score
		out.Total += r.Total
	}
	return out
}

// Outcome is the letter grade and pass/fail verdict for a result.
type Outcome struct {
	Letter     Letter
	Passed     bool
	Percentage float64
}

// Grade maps (score, total) to a letter grade and pass/fail verdict.
func Grade(score, total int) (Outcome, error) {
	if total <= 0 {
		return Outcome{}, ErrNoQuestions
	}
	if score < 0 || score > total {
		return Outcome{}, fmt.Errorf("score %d out of range for total %d", score, total)
	}

	pct := Result{Score: score, Total: total}.Percentage()
	// Compare in integers so boundaries like 75/100 are exact.
	for _, th := range scale {
		if score*100 >= th.MinPercentage*total {
			return Outcome{Letter: th.Letter, Passed: true, Percentage: pct}, nil
		}
	}
	return Outcome{Letter: LetterF, Passed: false, Percentage: pct}, nil
}

// GradeResult is Grade applied to a Result.
func GradeResult(r Result) (Outcome, error) {
	return Grade(r.Score, r.Total)
}
