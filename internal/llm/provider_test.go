package llm

import (
	"strings"
	"testing"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	rep := &model.Report{
		Summary: model.Summary{
			CompliancePercentage: 50,
			TotalRequirements:    2,
			StatusCounts: map[model.Verdict]int{
				model.VerdictCompliant:    1,
				model.VerdictNonCompliant: 1,
				model.VerdictUnknown:      0,
			},
		},
		Results: []model.ComplianceResult{
			{
				ComplianceStatus: model.VerdictNonCompliant,
				Reasoning:        "design value 45mm is below the required minimum of 50mm",
				Metadata:         model.ResultMetadata{ArticleID: "1", Category: model.CategoryInsulationThickness},
			},
		},
	}

	prompt := BuildPrompt(rep)

	if !strings.Contains(prompt, "50.0%") {
		t.Errorf("Expected summary percentage in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "below the required minimum of 50mm") {
		t.Errorf("Expected reasoning carried into prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "Do not change or second-guess any verdict") {
		t.Error("Expected the prompt to forbid re-judging verdicts")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "mystery"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "mystery") {
		t.Errorf("Expected error to name the provider, got %v", err)
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	_, err := NewProvider(Config{Provider: "openai"})
	if err == nil {
		t.Fatal("Expected error without API key")
	}
}

func TestNewProvider_AnthropicRequiresKey(t *testing.T) {
	_, err := NewProvider(Config{Provider: "anthropic"})
	if err == nil {
		t.Fatal("Expected error without API key")
	}
}

func TestNewProvider_Anthropic(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "anthropic", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider.Name() != "anthropic" {
		t.Errorf("Expected provider name anthropic, got %q", provider.Name())
	}

	// "claude" is an alias for the same provider.
	alias, err := NewProvider(Config{Provider: "claude", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error for alias, got %v", err)
	}
	if alias.Name() != "anthropic" {
		t.Errorf("Expected alias to resolve to anthropic, got %q", alias.Name())
	}
}

func TestConfigFromModel_AnthropicKeyFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	t.Setenv("OPENAI_API_KEY", "wrong-key")

	cfg := ConfigFromModel(model.LLMConfig{Provider: "anthropic"})
	if cfg.APIKey != "env-key" {
		t.Errorf("Expected ANTHROPIC_API_KEY fallback, got %q", cfg.APIKey)
	}
}

func TestNewProvider_OllamaNeedsNoKey(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider.Name() != "ollama" {
		t.Errorf("Expected provider name ollama, got %q", provider.Name())
	}
}
