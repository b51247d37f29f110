package unitize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/amir-khosravi/ComplianceCore/internal/compare"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// markerRe matches structural clause markers at the start of a line, e.g.
// "Article 4", "Section 2.1", "Clause 7a", "§ 12".
var markerRe = regexp.MustCompile(`(?im)^[ \t]*(?:article|section|clause|§)\s*(\d+(?:\.\d+)*[a-z]?)\b`)

// Segment splits a regulatory document into an ordered sequence of
// requirement units. A structural marker always starts a new unit; when no
// markers are present the document falls back to paragraph and then sentence
// splitting. Each unit gets a sequential identifier, a category inferred from
// keyword membership, and the article label of the nearest preceding marker
// ("N/A" when none exists).
func Segment(documentText string) ([]model.RequirementUnit, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, fmt.Errorf("segment document: %w", model.ErrEmptyInput)
	}

	matches := markerRe.FindAllStringSubmatchIndex(documentText, -1)
	if len(matches) == 0 {
		return unitsFromBlocks(splitUnstructured(documentText), nil), nil
	}

	type block struct {
		text    string
		article string
	}
	var blocks []block

	// Text before the first marker has no article label.
	if lead := strings.TrimSpace(documentText[:matches[0][0]]); lead != "" {
		blocks = append(blocks, block{text: lead, article: "N/A"})
	}

	for i, m := range matches {
		end := len(documentText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		text := strings.TrimSpace(documentText[m[0]:end])
		if text == "" {
			continue
		}
		blocks = append(blocks, block{
			text:    text,
			article: documentText[m[2]:m[3]],
		})
	}

	texts := make([]string, len(blocks))
	articles := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.text
		articles[i] = b.article
	}
	return unitsFromBlocks(texts, articles), nil
}

// unitsFromBlocks assigns sequential IDs, article labels, and categories.
// A nil articles slice labels every unit "N/A".
func unitsFromBlocks(texts []string, articles []string) []model.RequirementUnit {
	units := make([]model.RequirementUnit, 0, len(texts))
	for i, text := range texts {
		article := "N/A"
		if articles != nil {
			article = articles[i]
		}
		units = append(units, model.RequirementUnit{
			ID:        fmt.Sprintf("RU-%03d", i+1),
			Text:      text,
			Category:  compare.CategoryFor(text),
			ArticleID: article,
		})
	}
	return units
}

// splitUnstructured splits marker-free text on blank lines, falling back to
// sentence boundaries when the whole document is a single paragraph. Always
// returns at least one block for non-blank input.
func splitUnstructured(text string) []string {
	var blocks []string
	for _, para := range regexp.MustCompile(`\n[ \t]*\n`).Split(text, -1) {
		if p := strings.TrimSpace(para); p != "" {
			blocks = append(blocks, p)
		}
	}
	if len(blocks) > 1 {
		return blocks
	}

	sentences := splitSentences(text)
	if len(sentences) > 0 {
		return sentences
	}
	return []string{strings.TrimSpace(text)}
}

// splitSentences splits on terminators followed by whitespace. Fragments too
// short to be a checkable clause are dropped.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); len(s) >= 20 {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return sentences
}
