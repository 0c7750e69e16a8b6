package session

import "github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"

// PlanMode says whether a plan covers one test or the whole catalog.
type PlanMode string

const (
	ModeSingle PlanMode = "single"
	ModeAll    PlanMode = "all"
)

// Plan is the ordered list of tests to run back to back.
type Plan struct {
	Mode  PlanMode
	Tests []bank.Test
}

// SingleTestPlan runs one test.
func SingleTestPlan(t bank.Test) *Plan {
	return &Plan{Mode: ModeSingle, Tests: []bank.Test{t}}
}

// AllTestsPlan runs every test in catalog order.
func AllTestsPlan(c *bank.Catalog) *Plan {
	return &Plan{Mode: ModeAll, Tests: c.Tests()}
}

// Aggregated reports whether the plan ends with an overall result.
func (p *Plan) Aggregated() bool {
	return p.Mode == ModeAll
}
