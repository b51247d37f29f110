package model

import "strconv"

// Claim represents a single quantitative or categorical fact pulled from a
// text passage for one category. A claim is created fresh on every extraction
// call and never cached: the same passage may be re-read under a different
// category during query answering.
type Claim struct {
	Category Category `json:"category"`
	Raw      string   `json:"raw_text,omitempty"` // matched snippet
	Value    float64  `json:"value,omitempty"`    // parsed number (numeric categories)
	Token    string   `json:"token,omitempty"`    // normalized token (categorical categories)
	Tokens   []string `json:"tokens,omitempty"`   // full accepted set, when the text names several
	Unit     string   `json:"unit,omitempty"`
	Present  bool     `json:"present"`
}

// AbsentClaim returns the sentinel claim for a passage that does not address
// the category. Absence is a valid outcome, not an error.
func AbsentClaim(category Category) Claim {
	return Claim{Category: category, Present: false}
}

// Display renders the claim value with its unit for reasoning and chat
// templates. Absent claims render as the literal "N/A".
func (c Claim) Display() string {
	if !c.Present {
		return "N/A"
	}
	if c.Token != "" {
		return c.Token
	}
	v := strconv.FormatFloat(c.Value, 'f', -1, 64)
	switch c.Unit {
	case "mm", "g":
		return v + c.Unit
	case "":
		return v
	default:
		return v + " " + c.Unit
	}
}
