package check

import (
	"fmt"
	"strings"

	"github.com/amir-khosravi/ComplianceCore/internal/compare"
	"github.com/amir-khosravi/ComplianceCore/internal/extract"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// Checker assembles compliance verdicts by extracting claims from both sides
// of a requirement and feeding them to the comparator. It is stateless; each
// check is a pure function of its inputs and the fixed category tables.
type Checker struct {
	extractor  *extract.Extractor
	comparator *compare.Comparator
}

// NewChecker creates a new checker.
func NewChecker() *Checker {
	return &Checker{
		extractor:  extract.NewExtractor(),
		comparator: compare.NewComparator(),
	}
}

// Check evaluates a single design passage against a single regulation
// passage. Both texts must be non-empty.
func (c *Checker) Check(designText, regulationText string) (model.ComplianceResult, error) {
	if strings.TrimSpace(designText) == "" {
		return model.ComplianceResult{}, fmt.Errorf("check design text: %w", model.ErrEmptyInput)
	}
	if strings.TrimSpace(regulationText) == "" {
		return model.ComplianceResult{}, fmt.Errorf("check regulation text: %w", model.ErrEmptyInput)
	}

	unit := model.RequirementUnit{
		ID:        "RU-001",
		Text:      regulationText,
		Category:  compare.CategoryFor(regulationText),
		ArticleID: "N/A",
	}
	return c.checkUnit(designText, unit), nil
}

// BatchCheck evaluates every requirement unit against the design text,
// producing exactly one result per unit in input order. An empty design text
// fails the whole batch; a unit with an unrecognized category still yields an
// Unknown result so one bad unit never blocks the rest. An empty unit list
// returns an empty batch without error.
func (c *Checker) BatchCheck(designText string, units []model.RequirementUnit) ([]model.ComplianceResult, error) {
	if strings.TrimSpace(designText) == "" {
		return nil, fmt.Errorf("batch check: %w", model.ErrEmptyInput)
	}

	results := make([]model.ComplianceResult, 0, len(units))
	for _, unit := range units {
		results = append(results, c.checkUnit(designText, unit))
	}
	return results, nil
}

// checkUnit runs one extraction pair plus comparison for a unit.
func (c *Checker) checkUnit(designText string, unit model.RequirementUnit) model.ComplianceResult {
	category := unit.Category
	if category == "" {
		category = compare.CategoryFor(unit.Text)
	}

	designClaim := c.extractor.Extract(designText, category)
	requirementClaim := c.extractor.Extract(unit.Text, category)
	verdict, reasoning := c.comparator.Compare(category, designClaim, requirementClaim)

	return model.ComplianceResult{
		RegulationText:   unit.Text,
		DesignText:       designText,
		ComplianceStatus: verdict,
		Reasoning:        reasoning,
		Metadata: model.ResultMetadata{
			ArticleID: unit.ArticleID,
			Category:  category,
		},
	}
}
