package model

import "time"

// Verdict is the three-valued compliance outcome.
type Verdict string

const (
	VerdictCompliant    Verdict = "Compliant"
	VerdictNonCompliant Verdict = "Non-Compliant"
	VerdictUnknown      Verdict = "Unknown"
)

// ResultMetadata carries the provenance of a compliance result.
type ResultMetadata struct {
	ArticleID string   `json:"article_id"`
	Category  Category `json:"category"`
}

// ComplianceResult is the outcome of checking one requirement unit against
// the design text. Produced exactly once per unit per batch run and read-only
// thereafter; its reasoning is reproducible by re-running extraction and
// comparison on the stored texts.
type ComplianceResult struct {
	RegulationText   string         `json:"regulation_text"`
	DesignText       string         `json:"design_text"`
	ComplianceStatus Verdict        `json:"compliance_status"`
	Reasoning        string         `json:"reasoning"`
	Metadata         ResultMetadata `json:"metadata"`
}

// Summary aggregates a batch of results for report rendering.
type Summary struct {
	CompliancePercentage float64         `json:"compliance_percentage"`
	TotalRequirements    int             `json:"total_requirements"`
	StatusCounts         map[Verdict]int `json:"status_counts"`
}

// Report is the complete output of one analysis run.
type Report struct {
	GeneratedAt      time.Time          `json:"generated_at"`
	DesignSource     string             `json:"design_source,omitempty"`
	RegulationSource string             `json:"regulation_source,omitempty"`
	Summary          Summary            `json:"summary"`
	Results          []ComplianceResult `json:"results"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional narrative, never affects verdicts
}

// ChatTurn is one question/response exchange in a session's chat history.
type ChatTurn struct {
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// LLMSummary contains an optional LLM-generated narrative of a finished
// report. It is produced after all verdicts are assembled and never feeds
// back into the determination logic.
type LLMSummary struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
}
