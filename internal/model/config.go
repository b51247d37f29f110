package model

import "time"

// Config holds all runtime configuration. Values are resolved in order:
// CLI flags, COMPLIANCECORE_* environment variables, config file, defaults.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Session     SessionConfig     `yaml:"session"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// HTTPConfig controls fetching of regulatory documents from URLs.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	RatePerHost  float64       `yaml:"rate_per_host"` // requests per second
	RateBurst    int           `yaml:"rate_burst"`
}

// CacheConfig controls the document cache. Dir roots the disk layer that
// carries fetched documents across CLI invocations; empty means
// ~/.compliancecore/cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
	Dir     string        `yaml:"dir"`
}

// SessionConfig controls interactive session retention.
type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls worker pool sizing.
type ConcurrencyConfig struct {
	BenchWorkers int `yaml:"bench_workers"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig controls the optional narrative summarizer.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "", "openai", "anthropic", "ollama"
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	MaxTokens int    `yaml:"max_tokens"`
	TimeoutS  int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      60 * time.Second,
			UserAgent:    "ComplianceCore/0.1 (+https://github.com/amir-khosravi/ComplianceCore)",
			MaxBodyBytes: 2_000_000,
			RatePerHost:  1.0,
			RateBurst:    3,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Session: SessionConfig{
			TTL: time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BenchWorkers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			MaxTokens: 800,
			TimeoutS:  30,
		},
	}
}
