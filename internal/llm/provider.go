// Package llm generates an optional narrative summary of a finished
// compliance report. The summary is produced after all verdicts are
// assembled and never feeds back into the determination logic.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// Provider abstracts a chat-completion backend.
type Provider interface {
	// Name returns the provider identifier ("openai", "anthropic", "ollama").
	Name() string
	// Complete sends a prompt and returns the generated text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds provider settings.
type Config struct {
	Provider  string
	Model     string
	BaseURL   string
	APIKey    string
	MaxTokens int
	TimeoutS  int
}

// ConfigFromModel maps the application LLM configuration, filling the API
// key from the environment when unset.
func ConfigFromModel(cfg model.LLMConfig) Config {
	apiKey := cfg.APIKey
	if apiKey == "" {
		switch cfg.Provider {
		case "anthropic", "claude":
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		default:
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		APIKey:    apiKey,
		MaxTokens: cfg.MaxTokens,
		TimeoutS:  cfg.TimeoutS,
	}
}

// NewProvider creates the configured provider.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return newOpenAIProvider(cfg)
	case "anthropic", "claude":
		return newAnthropicProvider(cfg)
	case "ollama":
		return newOllamaProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q: valid providers are openai, anthropic, ollama", cfg.Provider)
	}
}

// BuildPrompt renders the report into a summarization prompt. The prompt
// carries only already-computed verdicts; the model is asked to narrate, not
// to judge.
func BuildPrompt(rep *model.Report) string {
	var sb strings.Builder

	sb.WriteString("You are summarizing an automated compliance screening report. ")
	sb.WriteString("Do not change or second-guess any verdict; restate the findings in plain engineering prose.\n\n")
	sb.WriteString(fmt.Sprintf("Overall compliance: %.1f%% of %d requirements.\n",
		rep.Summary.CompliancePercentage, rep.Summary.TotalRequirements))
	sb.WriteString(fmt.Sprintf("Counts: %d compliant, %d non-compliant, %d unknown.\n\n",
		rep.Summary.StatusCounts[model.VerdictCompliant],
		rep.Summary.StatusCounts[model.VerdictNonCompliant],
		rep.Summary.StatusCounts[model.VerdictUnknown]))

	sb.WriteString("Findings:\n")
	for _, result := range rep.Results {
		sb.WriteString(fmt.Sprintf("- [%s] Article %s (%s): %s\n",
			result.ComplianceStatus, result.Metadata.ArticleID,
			result.Metadata.Category, result.Reasoning))
	}

	sb.WriteString("\nWrite a short Markdown summary (max 300 words) highlighting the non-compliant items first.")
	return sb.String()
}
