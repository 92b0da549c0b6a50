// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-summarizer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the paper retrieval stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Categories is the arXiv category filter applied to every query
	// (default cs.LG, cs.AI).
	Categories []string `json:"categories" yaml:"categories"`

	// MaxRetries is the number of retry attempts on rate-limited requests.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LLMProvider identifies the chat backend.
type LLMProvider string

const (
	ProviderMock   LLMProvider = "mock"
	ProviderOpenAI LLMProvider = "openai"
	ProviderOllama LLMProvider = "ollama"
)

// LLMConfig holds shared settings for stages that call the chat model.
// It is constructed once at startup and injected into the planner and
// summarizer; stages never read configuration ambiently.
type LLMConfig struct {
	// Provider selects the chat backend: mock, openai, or ollama.
	Provider LLMProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gpt-4o-mini", "llama3.1:8b").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against hosted providers. When empty and the
	// provider is openai, the factory degrades to the mock backend.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint (used for ollama, default
	// http://localhost:11434).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited requests.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SummaryConfig holds settings for the summarization stage.
type SummaryConfig struct {
	// Budget is the hard wall-clock limit on the summarization model call
	// (default 120s). Exceeding it yields a degraded summary, never a hang.
	Budget time.Duration `json:"budget" yaml:"budget"`

	// MaxPapers caps how many papers enter the prompt context (default 10).
	MaxPapers int `json:"max_papers" yaml:"max_papers"`
}

// RunLogConfig holds settings for the local run-log sink.
type RunLogConfig struct {
	// Dir is the directory holding the run-log database (default "runs/").
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations for one pipeline instance.
type PipelineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	LLM     LLMConfig     `json:"llm" yaml:"llm"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
	RunLog  RunLogConfig  `json:"run_log" yaml:"run_log"`
}
