package chat

import (
	"fmt"
	"strings"

	"github.com/amir-khosravi/ComplianceCore/internal/extract"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// helpMessage is returned verbatim for any question outside the supported
// topics, regardless of batch contents.
const helpMessage = "I can help you with questions about compliance scores, " +
	"insulation thickness, seismic resistance, emergency power requirements, " +
	"and containment pumps. Please ask a specific question about these topics."

// topic routes a question to a category by an ordered keyword group.
type topic struct {
	name     string
	keywords []string
	category model.Category
}

// topics is evaluated top to bottom with first match winning; the compliance
// group deliberately precedes every value group so "what is the overall
// result" never routes to a category topic.
var topics = []topic{
	{name: "compliance", keywords: []string{"compliance", "score", "overall", "result"}},
	{name: "insulation", keywords: []string{"insulation", "thickness"}, category: model.CategoryInsulationThickness},
	{name: "seismic", keywords: []string{"seismic", "earthquake"}, category: model.CategorySeismicResistance},
	{name: "emergency", keywords: []string{"emergency", "power", "hours"}, category: model.CategoryEmergencyPower},
	{name: "pumps", keywords: []string{"pumps", "containment"}, category: model.CategoryPumpCount},
}

// Responder answers free-text questions against the most recent batch of
// compliance results. Values are re-derived from the stored texts on every
// call rather than read from the verdicts, so answers stay reproducible.
type Responder struct {
	extractor *extract.Extractor
}

// NewResponder creates a new responder.
func NewResponder() *Responder {
	return &Responder{extractor: extract.NewExtractor()}
}

// Answer classifies the question into exactly one topic and renders the
// topic's template with values re-extracted from the batch. Unsupported
// questions get the fixed help message.
func (r *Responder) Answer(question string, results []model.ComplianceResult) string {
	lower := strings.ToLower(question)

	for _, t := range topics {
		for _, keyword := range t.keywords {
			if strings.Contains(lower, keyword) {
				return r.respond(t, results)
			}
		}
	}
	return helpMessage
}

func (r *Responder) respond(t topic, results []model.ComplianceResult) string {
	if t.name == "compliance" {
		return r.complianceAnswer(results)
	}

	design, required := r.firstClaims(t.category, results)

	switch t.name {
	case "insulation":
		return fmt.Sprintf("The design specifies %s insulation thickness, while regulations require a minimum of %s.",
			design.Display(), required.Display())
	case "seismic":
		return fmt.Sprintf("The design can withstand %s seismic events, while regulations require a minimum of %s.",
			design.Display(), required.Display())
	case "emergency":
		meets := "does not meet"
		if design.Present && required.Present && design.Value >= required.Value {
			meets = "meets"
		}
		return fmt.Sprintf("The emergency system can operate for %s without external power, which %s the required %s.",
			design.Display(), meets, required.Display())
	default: // pumps
		return fmt.Sprintf("The containment spray system has %s, while regulations require a minimum of %s.",
			design.Display(), required.Display())
	}
}

// complianceAnswer aggregates the batch into a score and an issue count.
func (r *Responder) complianceAnswer(results []model.ComplianceResult) string {
	total := len(results)
	compliant := 0
	for _, result := range results {
		if result.ComplianceStatus == model.VerdictCompliant {
			compliant++
		}
	}

	score := 0.0
	if total > 0 {
		score = float64(compliant) / float64(total) * 100
	}
	issues := total - compliant

	return fmt.Sprintf("Based on the analysis, the overall compliance score is %.1f%%. %d issues were found.",
		score, issues)
}

// firstClaims re-runs extraction over the batch's stored texts for the
// category and returns the first non-absent design-side and requirement-side
// claims found. Either side may stay absent; callers render those as "N/A".
func (r *Responder) firstClaims(category model.Category, results []model.ComplianceResult) (design, required model.Claim) {
	design = model.AbsentClaim(category)
	required = model.AbsentClaim(category)

	for _, result := range results {
		if result.Metadata.Category != category {
			continue
		}
		if !design.Present {
			if claim := r.extractor.Extract(result.DesignText, category); claim.Present {
				design = claim
			}
		}
		if !required.Present {
			if claim := r.extractor.Extract(result.RegulationText, category); claim.Present {
				required = claim
			}
		}
		if design.Present && required.Present {
			break
		}
	}
	return design, required
}

// HelpMessage returns the fixed fallback response, for display in help text.
func HelpMessage() string {
	return helpMessage
}
