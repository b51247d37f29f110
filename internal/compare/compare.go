package compare

import (
	"fmt"
	"strings"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// direction selects the comparison semantics for a category.
type direction int

const (
	atLeast direction = iota // design >= requirement, ties compliant
	member                   // design token within the requirement's accepted set
)

// rule is one row of the category table: trigger keywords for categorization,
// the comparison direction, and the quantity name used in reasoning text.
type rule struct {
	triggers  []string
	direction direction
	quantity  string
}

// ruleTable is the fixed per-category comparison policy. The directions are
// business rules, not inferred from text. Iteration always goes through
// model.Categories() so the priority order stays authoritative.
var ruleTable = map[model.Category]rule{
	model.CategoryInsulationThickness: {
		triggers:  []string{"insulation", "thickness"},
		direction: atLeast,
		quantity:  "insulation thickness",
	},
	model.CategorySeismicResistance: {
		triggers:  []string{"seismic"},
		direction: atLeast,
		quantity:  "seismic resistance",
	},
	model.CategoryEmergencyPower: {
		triggers:  []string{"emergency", "hours"},
		direction: atLeast,
		quantity:  "emergency power duration",
	},
	model.CategoryPumpCount: {
		triggers:  []string{"pumps", "containment"},
		direction: atLeast,
		quantity:  "containment pump count",
	},
	model.CategoryMaterialGrade: {
		triggers:  []string{"stainless", "steel", "alloy"},
		direction: member,
		quantity:  "material grade",
	},
}

// CategoryFor infers the category of a text passage by keyword membership.
// Trigger groups are OR-sets; the first category in priority order with any
// keyword present wins. Overlaps are resolved by order alone, so reordering
// the table silently changes which claim gets extracted.
func CategoryFor(text string) model.Category {
	lower := strings.ToLower(text)
	for _, category := range model.Categories() {
		for _, keyword := range ruleTable[category].triggers {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return model.CategoryUnknown
}

// Comparator applies category-specific comparison rules to extracted claims.
// It holds no mutable state and is safe for concurrent use.
type Comparator struct{}

// NewComparator creates a new comparator.
func NewComparator() *Comparator {
	return &Comparator{}
}

// Compare applies the category's rule to a design claim and a requirement
// claim, returning a verdict and a human-readable reasoning string. An absent
// claim on either side, or an unrecognized category, yields Unknown.
func (c *Comparator) Compare(category model.Category, design, requirement model.Claim) (model.Verdict, string) {
	r, ok := ruleTable[category]
	if !ok {
		return model.VerdictUnknown, "no comparison rule is registered for this requirement category"
	}

	if !requirement.Present && !design.Present {
		return model.VerdictUnknown, fmt.Sprintf("neither the regulation nor the design states a %s claim", r.quantity)
	}
	if !requirement.Present {
		return model.VerdictUnknown, fmt.Sprintf("the regulation text does not state a %s claim that could be located", r.quantity)
	}
	if !design.Present {
		return model.VerdictUnknown, fmt.Sprintf("the design text does not state a %s claim that could be located", r.quantity)
	}

	switch r.direction {
	case member:
		return compareMembership(r, design, requirement)
	default:
		if design.Value >= requirement.Value {
			return model.VerdictCompliant, fmt.Sprintf(
				"design value %s meets or exceeds the required minimum of %s",
				design.Display(), requirement.Display())
		}
		return model.VerdictNonCompliant, fmt.Sprintf(
			"design value %s is below the required minimum of %s",
			design.Display(), requirement.Display())
	}
}

// compareMembership checks the design's grade family against the
// requirement's accepted family set.
func compareMembership(r rule, design, requirement model.Claim) (model.Verdict, string) {
	accepted := requirement.Tokens
	if len(accepted) == 0 {
		accepted = []string{requirement.Token}
	}

	for _, token := range accepted {
		if strings.EqualFold(design.Token, token) {
			return model.VerdictCompliant, fmt.Sprintf(
				"design %s %s is within the accepted grade families (%s)",
				r.quantity, design.Token, strings.Join(accepted, ", "))
		}
	}
	return model.VerdictNonCompliant, fmt.Sprintf(
		"design %s %s is not among the accepted grade families (%s)",
		r.quantity, design.Token, strings.Join(accepted, ", "))
}
