package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"text/template"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// Renderer writes reports to disk in JSON and Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

var mdTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"icon":  statusIcon,
	"count": statusCount,
}).Parse(`# Compliance Report

**Generated:** {{ .GeneratedAt.Format "2006-01-02 15:04:05 MST" }}
{{- if .DesignSource }}
**Design:** {{ .DesignSource }}
{{- end }}
{{- if .RegulationSource }}
**Regulations:** {{ .RegulationSource }}
{{- end }}

## Summary

| Metric | Value |
|---|---|
| Overall compliance | {{ printf "%.1f" .Summary.CompliancePercentage }}% |
| Total requirements | {{ .Summary.TotalRequirements }} |
| Compliant | {{ count .Summary "Compliant" }} |
| Non-Compliant | {{ count .Summary "Non-Compliant" }} |
| Unknown | {{ count .Summary "Unknown" }} |

## Results
{{ range .Results }}
### {{ icon .ComplianceStatus }} {{ .ComplianceStatus }} — Article {{ .Metadata.ArticleID }} ({{ .Metadata.Category }})

> {{ .RegulationText }}

{{ .Reasoning }}
{{ end }}`))

const footer = `
---
*Generated by ComplianceCore. Decision-support output, not an authoritative legal or safety determination.*
`

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(rep *model.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as Markdown.
func (r *Renderer) RenderMarkdown(rep *model.Report, path string) error {
	md, err := r.Markdown(rep)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Markdown renders the report to a Markdown string.
func (r *Renderer) Markdown(rep *model.Report) (string, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, rep); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	if r.includeFooter {
		buf.WriteString(footer)
	}
	return buf.String(), nil
}

// LoadJSON reads a previously rendered report back, so query answering can
// run against a saved batch.
func LoadJSON(path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var rep model.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &rep, nil
}

func statusCount(summary model.Summary, status string) int {
	return summary.StatusCounts[model.Verdict(status)]
}

func statusIcon(status model.Verdict) string {
	switch status {
	case model.VerdictCompliant:
		return "✅"
	case model.VerdictNonCompliant:
		return "❌"
	default:
		return "⚠️"
	}
}
