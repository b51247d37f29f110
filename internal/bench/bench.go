// Package bench scores the engine against a fixed suite of design/regulation
// pairs with known expected verdicts, reporting accuracy overall and per
// category.
package bench

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/amir-khosravi/ComplianceCore/internal/check"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
	"github.com/amir-khosravi/ComplianceCore/internal/worker"
)

// Case is one benchmark pair with its expected verdict.
type Case struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Design     string        `json:"design"`
	Regulation string        `json:"regulation"`
	Expected   model.Verdict `json:"expected_status"`
}

// Cases returns the built-in suite.
func Cases() []Case {
	return []Case{
		{
			ID:         "TC001",
			Name:       "Insulation thickness below minimum",
			Design:     "The cooling system connections are insulated with standard thermal insulation with a thickness of 45mm.",
			Regulation: "All cooling system connections must have standard thermal insulation with a minimum thickness of 50 mm.",
			Expected:   model.VerdictNonCompliant,
		},
		{
			ID:         "TC002",
			Name:       "Seismic resistance below minimum",
			Design:     "All cooling system components are designed to withstand seismic events up to 0.25g intensity.",
			Regulation: "Seismic resistance with a minimum intensity of 0.35g is mandatory for all cooling system components.",
			Expected:   model.VerdictNonCompliant,
		},
		{
			ID:         "TC003",
			Name:       "Emergency power duration exceeds minimum",
			Design:     "The emergency cooling system can operate without external power for 96 hours.",
			Regulation: "The emergency cooling system must be able to operate for at least 72 hours without an external power source in case of power failure.",
			Expected:   model.VerdictCompliant,
		},
		{
			ID:         "TC004",
			Name:       "Containment pump count below minimum",
			Design:     "Containment spray system consists of two independent pumps with separate power supplies.",
			Regulation: "The containment spray system must consist of at least three independent pumps.",
			Expected:   model.VerdictNonCompliant,
		},
		{
			ID:         "TC005",
			Name:       "Pipe wall thickness below minimum",
			Design:     "The pipe wall thickness is 38 mm.",
			Regulation: "The wall thickness of the main pipes must be calculated according to pressure and temperature and must not be less than 40 mm.",
			Expected:   model.VerdictNonCompliant,
		},
		{
			ID:         "TC006",
			Name:       "Material grade within accepted family",
			Design:     "Primary cooling system pipes are made of 316L stainless steel.",
			Regulation: "Primary cooling system pipes must be made of 300-series stainless steel or equivalent resistant alloys.",
			Expected:   model.VerdictCompliant,
		},
	}
}

// CaseResult is the graded outcome of one case.
type CaseResult struct {
	Case    Case                   `json:"case"`
	Result  model.ComplianceResult `json:"result"`
	Passed  bool                   `json:"passed"`
	Elapsed time.Duration          `json:"elapsed_ns"`
	Err     string                 `json:"error,omitempty"`
}

// GetError satisfies worker.Result; grading failures are recorded on the
// case, never propagated.
func (r *CaseResult) GetError() error {
	return nil
}

// CategoryAccuracy aggregates pass/fail per engine category.
type CategoryAccuracy struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Accuracy float64 `json:"accuracy"`
}

// Outcome is the full benchmark result.
type Outcome struct {
	GeneratedAt time.Time                           `json:"generated_at"`
	Results     []CaseResult                        `json:"results"`
	Total       int                                 `json:"total"`
	Passed      int                                 `json:"passed"`
	Accuracy    float64                             `json:"accuracy"`
	PerCategory map[model.Category]CategoryAccuracy `json:"per_category"`
	Elapsed     time.Duration                       `json:"elapsed_ns"`
}

// Runner executes the suite through a worker pool.
type Runner struct {
	checker *check.Checker
	workers int
}

// NewRunner creates a runner with the given concurrency.
func NewRunner(workers int) *Runner {
	return &Runner{checker: check.NewChecker(), workers: workers}
}

// caseJob runs one case on the pool.
type caseJob struct {
	checker *check.Checker
	c       Case
}

// Execute checks the case and grades the verdict against the expectation.
func (j *caseJob) Execute(ctx context.Context) worker.Result {
	start := time.Now()

	result, err := j.checker.Check(j.c.Design, j.c.Regulation)
	cr := &CaseResult{
		Case:    j.c,
		Result:  result,
		Elapsed: time.Since(start),
	}
	if err != nil {
		cr.Err = err.Error()
		return cr
	}
	cr.Passed = result.ComplianceStatus == j.c.Expected
	return cr
}

// Run executes every case and aggregates accuracy.
func (r *Runner) Run(ctx context.Context, cases []Case) *Outcome {
	start := time.Now()

	pool := worker.NewPool(r.workers)
	pool.Start()
	for _, c := range cases {
		pool.Submit(&caseJob{checker: r.checker, c: c})
	}
	raw := pool.Wait()

	results := make([]CaseResult, 0, len(raw))
	for _, res := range raw {
		results = append(results, *res.(*CaseResult))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Case.ID < results[j].Case.ID
	})

	outcome := &Outcome{
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		Total:       len(results),
		PerCategory: make(map[model.Category]CategoryAccuracy),
		Elapsed:     time.Since(start),
	}

	for _, result := range results {
		if result.Passed {
			outcome.Passed++
		}
		category := result.Result.Metadata.Category
		acc := outcome.PerCategory[category]
		acc.Total++
		if result.Passed {
			acc.Passed++
		}
		acc.Accuracy = float64(acc.Passed) / float64(acc.Total)
		outcome.PerCategory[category] = acc
	}

	if outcome.Total > 0 {
		outcome.Accuracy = float64(outcome.Passed) / float64(outcome.Total)
	}
	return outcome
}

// Render returns a plain-text scoreboard for terminal output.
func Render(outcome *Outcome) string {
	out := fmt.Sprintf("Benchmark: %d/%d passed (%.1f%%) in %v\n\n",
		outcome.Passed, outcome.Total, outcome.Accuracy*100, outcome.Elapsed.Round(time.Millisecond))

	for _, result := range outcome.Results {
		mark := "PASS"
		if !result.Passed {
			mark = "FAIL"
		}
		out += fmt.Sprintf("  [%s] %s %s: expected %s, got %s\n",
			mark, result.Case.ID, result.Case.Name,
			result.Case.Expected, result.Result.ComplianceStatus)
	}

	out += "\nPer-category accuracy:\n"
	categories := make([]model.Category, 0, len(outcome.PerCategory))
	for category := range outcome.PerCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, category := range categories {
		acc := outcome.PerCategory[category]
		out += fmt.Sprintf("  %-26s %d/%d (%.1f%%)\n", category, acc.Passed, acc.Total, acc.Accuracy*100)
	}
	return out
}
