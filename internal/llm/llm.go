// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the chat model behind a single-method provider
// interface so the planner and summarizer can be tested without network
// access. Providers are selected once at configuration time, never by
// runtime type inspection.
package llm

import (
	"context"
	"fmt"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider sends a chat conversation to a model and returns the raw text
// of its reply. Implementations must honor ctx cancellation.
type Provider interface {
	Name() string
	Chat(ctx context.Context, messages []Message) (string, error)
}

// New selects a provider from configuration. An openai provider without an
// API key degrades to the deterministic mock so local runs stay usable.
// An unknown provider string is a configuration error.
func New(cfg types.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case types.ProviderMock, "":
		return &Mock{}, nil
	case types.ProviderOpenAI:
		if cfg.APIKey == "" {
			return &Mock{}, nil
		}
		return NewOpenAIBackend(cfg), nil
	case types.ProviderOllama:
		return NewOllamaBackend(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
