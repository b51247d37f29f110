package report

import (
	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// Summarize aggregates a batch of results into the summary consumed by
// report rendering and the chat responder.
func Summarize(results []model.ComplianceResult) model.Summary {
	counts := map[model.Verdict]int{
		model.VerdictCompliant:    0,
		model.VerdictNonCompliant: 0,
		model.VerdictUnknown:      0,
	}
	for _, result := range results {
		counts[result.ComplianceStatus]++
	}

	total := len(results)
	percentage := 0.0
	if total > 0 {
		percentage = float64(counts[model.VerdictCompliant]) / float64(total) * 100
	}

	return model.Summary{
		CompliancePercentage: percentage,
		TotalRequirements:    total,
		StatusCounts:         counts,
	}
}
