package llm

import (
	"context"
	"fmt"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// Summarizer turns a finished report into a narrative summary.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer for the configured provider.
func NewSummarizer(cfg Config) (*Summarizer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: cfg}, nil
}

// Summarize generates the narrative. A failure here never fails the
// analysis; callers warn and move on.
func (s *Summarizer) Summarize(ctx context.Context, rep *model.Report) (*model.LLMSummary, error) {
	text, err := s.provider.Complete(ctx, BuildPrompt(rep))
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	return &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     s.config.Model,
		SummaryMD: text,
	}, nil
}
