package session

import (
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/grading"
)

// TestResult is one finished test within a plan.
type TestResult struct {
	Number int
	Name   string
	Result grading.Result
}

// Progress accumulates results while a plan runs.
type Progress struct {
	Results []TestResult
}

// Record adds the result of a finished test.
func (p *Progress) Record(t bank.Test, r grading.Result) {
	p.Results = append(p.Results, TestResult{
		Number: t.Number,
		Name:   t.Name,
		Result: r,
	})
}

// Total sums scores and totals across all recorded results.
func (p *Progress) Total() grading.Result {
	rs := make([]grading.Result, len(p.Results))
	for i, r := range p.Results {
		rs[i] = r.Result
	}
	return grading.Sum(rs...)
}

// Outcome grades the summed result.
func (p *Progress) Outcome() (grading.Outcome, error) {
	return grading.GradeResult(p.Total())
}
