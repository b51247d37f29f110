package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// pattern pairs a compiled regular expression with a parser for its first
// capture group.
type pattern struct {
	re    *regexp.Regexp
	parse func(groups []string) (model.Claim, bool)
}

// Extractor pulls comparable claims out of free text. It maintains a fixed
// table mapping category to an ordered pattern list, tried in order with
// first match winning. More specific patterns precede looser numeric-only
// ones, so a multi-topic passage yields the number attached to the category
// rather than an unrelated one. The compiled table is read-only and safe for
// unsynchronized concurrent reads.
type Extractor struct {
	patterns map[model.Category][]pattern
}

// numberWords maps spelled-out counts to values for pump-count extraction.
var numberWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// NewExtractor creates an extractor with the full pattern table compiled.
func NewExtractor() *Extractor {
	e := &Extractor{patterns: make(map[model.Category][]pattern)}

	e.patterns[model.CategoryInsulationThickness] = []pattern{
		numeric(`(?i)insulation[^.]*?thickness[^.]*?(\d+)\s*mm`, model.CategoryInsulationThickness, "mm"),
		numeric(`(?i)thickness[^.]*?(\d+)\s*mm`, model.CategoryInsulationThickness, "mm"),
		numeric(`(?i)(\d+)\s*mm\b`, model.CategoryInsulationThickness, "mm"),
	}

	e.patterns[model.CategorySeismicResistance] = []pattern{
		numeric(`(?i)seismic[^.]*?(\d+\.\d+)\s*g\b`, model.CategorySeismicResistance, "g"),
		numeric(`(?i)(\d+\.\d+)\s*g\b`, model.CategorySeismicResistance, "g"),
	}

	e.patterns[model.CategoryEmergencyPower] = []pattern{
		numeric(`(?i)operate[^.]*?(\d+)\s*hours?\b`, model.CategoryEmergencyPower, "hours"),
		numeric(`(?i)(\d+)\s*hours?\b`, model.CategoryEmergencyPower, "hours"),
	}

	// Counts only qualify when "independent" or "separate" sits next to the
	// number; a bare count in a pump passage is too ambiguous to compare.
	e.patterns[model.CategoryPumpCount] = []pattern{
		count(`(?i)(\d+|one|two|three|four|five|six|seven|eight|nine|ten)\s+(?:independent|separate)\s+pumps?\b`),
		count(`(?i)(\d+|one|two|three|four|five|six|seven|eight|nine|ten)\s+(?:independent|separate)\b`),
	}

	e.patterns[model.CategoryMaterialGrade] = []pattern{
		family(`(?i)(\d)00[-\s]?series\s+stainless`),
		family(`(?i)\b([2-4])\d{2}[a-z]?\s+stainless`),
		family(`(?i)\bgrade\s+([2-4])\d{2}[a-z]?\b`),
	}

	return e
}

// Extract pulls the category's claim out of the text. On no match it returns
// an absent claim; absence signals the passage does not address the
// category's specific claim and is never an error.
func (e *Extractor) Extract(text string, category model.Category) model.Claim {
	patterns, ok := e.patterns[category]
	if !ok {
		return model.AbsentClaim(category)
	}

	for _, p := range patterns {
		groups := p.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		if claim, ok := p.parse(groups); ok {
			if category == model.CategoryMaterialGrade {
				claim.Tokens = e.gradeFamilies(text)
			}
			return claim
		}
	}
	return model.AbsentClaim(category)
}

// gradeFamilies collects every distinct grade family named in the text, in
// order of appearance. A regulation may accept several families at once.
func (e *Extractor) gradeFamilies(text string) []string {
	var families []string
	seen := make(map[string]bool)
	for _, p := range e.patterns[model.CategoryMaterialGrade] {
		for _, groups := range p.re.FindAllStringSubmatch(text, -1) {
			claim, ok := p.parse(groups)
			if !ok || seen[claim.Token] {
				continue
			}
			seen[claim.Token] = true
			families = append(families, claim.Token)
		}
	}
	return families
}

// numeric builds a pattern whose first capture group parses as a number.
func numeric(expr string, category model.Category, unit string) pattern {
	re := regexp.MustCompile(expr)
	return pattern{
		re: re,
		parse: func(groups []string) (model.Claim, bool) {
			value, err := strconv.ParseFloat(groups[1], 64)
			if err != nil {
				return model.Claim{}, false
			}
			return model.Claim{
				Category: category,
				Raw:      strings.TrimSpace(groups[0]),
				Value:    value,
				Unit:     unit,
				Present:  true,
			}, true
		},
	}
}

// count builds a pump-count pattern accepting digits or spelled-out numbers.
func count(expr string) pattern {
	re := regexp.MustCompile(expr)
	return pattern{
		re: re,
		parse: func(groups []string) (model.Claim, bool) {
			word := strings.ToLower(groups[1])
			value, ok := numberWords[word]
			if !ok {
				parsed, err := strconv.ParseFloat(word, 64)
				if err != nil {
					return model.Claim{}, false
				}
				value = parsed
			}
			return model.Claim{
				Category: model.CategoryPumpCount,
				Raw:      strings.TrimSpace(groups[0]),
				Value:    value,
				Unit:     "pumps",
				Present:  true,
			}, true
		},
	}
}

// family builds a material pattern normalizing to a grade family token, e.g.
// "316L stainless steel" and "300-series stainless" both map to "300-series".
func family(expr string) pattern {
	re := regexp.MustCompile(expr)
	return pattern{
		re: re,
		parse: func(groups []string) (model.Claim, bool) {
			return model.Claim{
				Category: model.CategoryMaterialGrade,
				Raw:      strings.TrimSpace(groups[0]),
				Token:    groups[1] + "00-series",
				Unit:     "grade family",
				Present:  true,
			}, true
		},
	}
}
