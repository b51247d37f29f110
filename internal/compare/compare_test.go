package compare

import (
	"strings"
	"testing"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

func claim(category model.Category, value float64, unit string) model.Claim {
	return model.Claim{Category: category, Value: value, Unit: unit, Present: true}
}

func TestComparator_MeetsOrExceeds(t *testing.T) {
	comparator := NewComparator()

	tests := []struct {
		name     string
		category model.Category
		design   float64
		required float64
		unit     string
		want     model.Verdict
	}{
		{"thickness below minimum", model.CategoryInsulationThickness, 45, 50, "mm", model.VerdictNonCompliant},
		{"thickness above minimum", model.CategoryInsulationThickness, 55, 50, "mm", model.VerdictCompliant},
		{"thickness boundary equality", model.CategoryInsulationThickness, 50, 50, "mm", model.VerdictCompliant},
		{"seismic below minimum", model.CategorySeismicResistance, 0.25, 0.35, "g", model.VerdictNonCompliant},
		{"seismic boundary equality", model.CategorySeismicResistance, 0.35, 0.35, "g", model.VerdictCompliant},
		{"duration above minimum", model.CategoryEmergencyPower, 96, 72, "hours", model.VerdictCompliant},
		{"pump count below minimum", model.CategoryPumpCount, 2, 3, "pumps", model.VerdictNonCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, reasoning := comparator.Compare(tt.category,
				claim(tt.category, tt.design, tt.unit),
				claim(tt.category, tt.required, tt.unit))
			if verdict != tt.want {
				t.Errorf("Expected %s, got %s (%s)", tt.want, verdict, reasoning)
			}
			if reasoning == "" {
				t.Error("Expected non-empty reasoning")
			}
		})
	}
}

func TestComparator_ReasoningCitesBothValues(t *testing.T) {
	comparator := NewComparator()

	verdict, reasoning := comparator.Compare(model.CategoryInsulationThickness,
		claim(model.CategoryInsulationThickness, 45, "mm"),
		claim(model.CategoryInsulationThickness, 50, "mm"))

	if verdict != model.VerdictNonCompliant {
		t.Fatalf("Expected Non-Compliant, got %s", verdict)
	}
	if !strings.Contains(reasoning, "45mm") || !strings.Contains(reasoning, "50mm") {
		t.Errorf("Expected reasoning to cite 45mm and 50mm, got %q", reasoning)
	}
	if !strings.Contains(reasoning, "below the required minimum") {
		t.Errorf("Expected reasoning to state the violated relation, got %q", reasoning)
	}
}

func TestComparator_MaterialGradeMembership(t *testing.T) {
	comparator := NewComparator()

	design := model.Claim{Category: model.CategoryMaterialGrade, Token: "300-series", Present: true}

	requirement := model.Claim{
		Category: model.CategoryMaterialGrade,
		Token:    "300-series",
		Tokens:   []string{"300-series", "400-series"},
		Present:  true,
	}
	verdict, _ := comparator.Compare(model.CategoryMaterialGrade, design, requirement)
	if verdict != model.VerdictCompliant {
		t.Errorf("Expected Compliant for family within accepted set, got %s", verdict)
	}

	other := model.Claim{Category: model.CategoryMaterialGrade, Token: "200-series", Present: true}
	verdict, reasoning := comparator.Compare(model.CategoryMaterialGrade, other, requirement)
	if verdict != model.VerdictNonCompliant {
		t.Errorf("Expected Non-Compliant for family outside accepted set, got %s", verdict)
	}
	if !strings.Contains(reasoning, "200-series") {
		t.Errorf("Expected reasoning to cite the design family, got %q", reasoning)
	}
}

func TestComparator_AbsentClaims(t *testing.T) {
	comparator := NewComparator()

	present := claim(model.CategorySeismicResistance, 0.3, "g")
	absent := model.AbsentClaim(model.CategorySeismicResistance)

	verdict, reasoning := comparator.Compare(model.CategorySeismicResistance, absent, present)
	if verdict != model.VerdictUnknown {
		t.Errorf("Expected Unknown for absent design claim, got %s", verdict)
	}
	if !strings.Contains(reasoning, "design") {
		t.Errorf("Expected reasoning to name the design side, got %q", reasoning)
	}

	verdict, reasoning = comparator.Compare(model.CategorySeismicResistance, present, absent)
	if verdict != model.VerdictUnknown {
		t.Errorf("Expected Unknown for absent requirement claim, got %s", verdict)
	}
	if !strings.Contains(reasoning, "regulation") {
		t.Errorf("Expected reasoning to name the regulation side, got %q", reasoning)
	}
}

func TestComparator_UnrecognizedCategory(t *testing.T) {
	comparator := NewComparator()

	verdict, reasoning := comparator.Compare(model.CategoryUnknown,
		model.AbsentClaim(model.CategoryUnknown), model.AbsentClaim(model.CategoryUnknown))
	if verdict != model.VerdictUnknown {
		t.Errorf("Expected Unknown for unrecognized category, got %s", verdict)
	}
	if reasoning == "" {
		t.Error("Expected explanatory reasoning")
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{"insulation", "All connections must have thermal insulation with a minimum thickness of 50 mm.", model.CategoryInsulationThickness},
		{"bare thickness", "The wall thickness of the main pipes must not be less than 40 mm.", model.CategoryInsulationThickness},
		{"seismic", "Seismic resistance with a minimum intensity of 0.35g is mandatory.", model.CategorySeismicResistance},
		{"emergency", "The emergency cooling system must operate for at least 72 hours.", model.CategoryEmergencyPower},
		{"pumps", "The containment spray system must consist of at least three independent pumps.", model.CategoryPumpCount},
		{"material", "Pipes must be made of 300-series stainless steel.", model.CategoryMaterialGrade},
		{"none", "Operators must keep records of all maintenance.", model.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryFor(tt.text); got != tt.want {
				t.Errorf("CategoryFor(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategoryFor_PriorityOrder(t *testing.T) {
	// Mentions both "thickness" and "hours": insulation thickness precedes
	// emergency power in the fixed order, so it must win.
	text := "Insulation thickness must hold for 24 hours of exposure."
	if got := CategoryFor(text); got != model.CategoryInsulationThickness {
		t.Errorf("Expected first-match-wins to pick insulation thickness, got %s", got)
	}
}
