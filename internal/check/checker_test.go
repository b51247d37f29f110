package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
	"github.com/amir-khosravi/ComplianceCore/internal/unitize"
)

func TestChecker_InsulationThicknessScenario(t *testing.T) {
	checker := NewChecker()

	design := "The cooling system connections are insulated with standard thermal insulation with a thickness of 45mm."
	regulation := "All cooling system connections must have standard thermal insulation with a minimum thickness of 50 mm."

	result, err := checker.Check(design, regulation)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.ComplianceStatus != model.VerdictNonCompliant {
		t.Errorf("Expected Non-Compliant, got %s", result.ComplianceStatus)
	}
	if !strings.Contains(result.Reasoning, "45mm") || !strings.Contains(result.Reasoning, "50mm") {
		t.Errorf("Expected reasoning to cite 45 and 50, got %q", result.Reasoning)
	}
}

func TestChecker_EmergencyPowerScenario(t *testing.T) {
	checker := NewChecker()

	design := "The emergency cooling system can operate without external power for 96 hours."
	regulation := "The emergency cooling system must be able to operate for at least 72 hours without an external power source."

	result, err := checker.Check(design, regulation)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.ComplianceStatus != model.VerdictCompliant {
		t.Errorf("Expected Compliant, got %s (%s)", result.ComplianceStatus, result.Reasoning)
	}
}

func TestChecker_PumpCountScenario(t *testing.T) {
	checker := NewChecker()

	design := "Containment spray system consists of two independent pumps with separate power supplies."
	regulation := "The containment spray system must consist of at least three independent pumps."

	result, err := checker.Check(design, regulation)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.ComplianceStatus != model.VerdictNonCompliant {
		t.Errorf("Expected Non-Compliant, got %s (%s)", result.ComplianceStatus, result.Reasoning)
	}
}

func TestChecker_MaterialGradeScenario(t *testing.T) {
	checker := NewChecker()

	design := "Primary cooling system pipes are made of 316L stainless steel."
	regulation := "Primary cooling system pipes must be made of 300-series stainless steel or equivalent resistant alloys."

	result, err := checker.Check(design, regulation)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.ComplianceStatus != model.VerdictCompliant {
		t.Errorf("Expected Compliant, got %s (%s)", result.ComplianceStatus, result.Reasoning)
	}
}

func TestChecker_EmptyInputs(t *testing.T) {
	checker := NewChecker()

	if _, err := checker.Check("", "some regulation"); !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput for empty design, got %v", err)
	}
	if _, err := checker.Check("   ", "some regulation"); !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput for whitespace design, got %v", err)
	}
	if _, err := checker.Check("some design", ""); !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput for empty regulation, got %v", err)
	}
}

func TestChecker_BatchCheck(t *testing.T) {
	checker := NewChecker()

	doc := `Article 1
All cooling system connections must have standard thermal insulation with a minimum thickness of 50 mm.

Article 2
The emergency cooling system must be able to operate for at least 72 hours without an external power source.

Article 3
Operators must keep a written maintenance log at all times.`

	units, err := unitize.Segment(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	design := "Insulation thickness of 55mm is provided. The emergency cooling system can operate without external power for 96 hours."

	results, err := checker.BatchCheck(design, units)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != len(units) {
		t.Fatalf("Expected one result per unit (%d), got %d", len(units), len(results))
	}

	// Order preserved from input units.
	for i, result := range results {
		if result.Metadata.ArticleID != units[i].ArticleID {
			t.Errorf("Result %d out of order: article %s vs unit %s", i, result.Metadata.ArticleID, units[i].ArticleID)
		}
	}

	if results[0].ComplianceStatus != model.VerdictCompliant {
		t.Errorf("Article 1: expected Compliant, got %s (%s)", results[0].ComplianceStatus, results[0].Reasoning)
	}
	if results[1].ComplianceStatus != model.VerdictCompliant {
		t.Errorf("Article 2: expected Compliant, got %s (%s)", results[1].ComplianceStatus, results[1].Reasoning)
	}

	// The off-topic unit resolves to Unknown without aborting the batch.
	if results[2].ComplianceStatus != model.VerdictUnknown {
		t.Errorf("Article 3: expected Unknown, got %s", results[2].ComplianceStatus)
	}
	if results[2].Reasoning == "" {
		t.Error("Article 3: expected explanatory reasoning")
	}
}

func TestChecker_BatchCheckEmptyDesign(t *testing.T) {
	checker := NewChecker()

	units := []model.RequirementUnit{{ID: "RU-001", Text: "Insulation thickness of at least 50 mm.", Category: model.CategoryInsulationThickness, ArticleID: "1"}}
	if _, err := checker.BatchCheck("", units); !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestChecker_BatchCheckEmptyUnits(t *testing.T) {
	checker := NewChecker()

	results, err := checker.BatchCheck("A design with insulation thickness of 50mm.", nil)
	if err != nil {
		t.Fatalf("Expected no error for empty unit list, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected empty batch, got %d results", len(results))
	}
}

func TestChecker_ResultReproducible(t *testing.T) {
	checker := NewChecker()

	design := "The cooling system connections are insulated with a thickness of 45mm."
	regulation := "Connections must have insulation with a minimum thickness of 50 mm."

	first, err := checker.Check(design, regulation)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Re-running the engine on the stored texts reproduces the verdict.
	second, err := checker.Check(first.DesignText, first.RegulationText)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.ComplianceStatus != first.ComplianceStatus || second.Reasoning != first.Reasoning {
		t.Errorf("Expected reproducible result, got %q vs %q", first.Reasoning, second.Reasoning)
	}
}
