// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/research-summarizer/internal/httputil"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

// defaultOllamaBaseURL is the local Ollama daemon endpoint.
const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaBackend calls a local Ollama daemon's chat endpoint.
type OllamaBackend struct {
	BaseURL    string
	Model      string
	Client     *http.Client
	MaxRetries int
}

// NewOllamaBackend builds an Ollama provider from configuration.
func NewOllamaBackend(cfg types.LLMConfig) *OllamaBackend {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "llama3.1:8b"
	}
	return &OllamaBackend{
		BaseURL:    baseURL,
		Model:      model,
		Client:     &http.Client{Timeout: 300 * time.Second},
		MaxRetries: cfg.MaxRetries,
	}
}

// ollamaRequest is the request body for the Ollama chat API.
type ollamaRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// ollamaResponse is the non-streaming response body from the Ollama chat API.
type ollamaResponse struct {
	Message Message `json:"message"`
}

// Name returns the provider identifier.
func (b *OllamaBackend) Name() string { return "ollama" }

// Chat sends the conversation to /api/chat and returns the reply content.
func (b *OllamaBackend) Chat(ctx context.Context, messages []Message) (string, error) {
	reqBody := ollamaRequest{
		Model:    b.Model,
		Messages: messages,
		Stream:   false,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/api/chat", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, b.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling Ollama API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Ollama API returned %d: %s", resp.StatusCode, string(body))
	}

	var oResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&oResp); err != nil {
		return "", fmt.Errorf("decoding Ollama response: %w", err)
	}

	if oResp.Message.Content == "" {
		return "", fmt.Errorf("Ollama API returned empty content")
	}
	return oResp.Message.Content, nil
}
