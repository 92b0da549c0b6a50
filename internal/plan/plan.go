// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan converts a free-text research query into a structured search
// plan via a single chat-model call. The stage is total: malformed model
// output or a failed call falls back to a naive keyword split, never an error.
package plan

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pdiddy/research-summarizer/internal/llm"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

// Planner derives search plans from queries.
type Planner struct {
	provider llm.Provider
}

// NewPlanner builds a planner around the given chat provider.
func NewPlanner(provider llm.Provider) *Planner {
	return &Planner{provider: provider}
}

// planJSON is the JSON shape the model is instructed to emit.
type planJSON struct {
	Keywords   []string         `json:"keywords"`
	Include    []string         `json:"include"`
	Exclude    []string         `json:"exclude"`
	DateWindow *types.DateRange `json:"date_window"`
}

// Plan sends exactly one chat call and decodes the response into a search
// plan. Any decode or call failure yields the fallback plan: the query split
// on whitespace as keywords, everything else empty. Plan never fails.
func (p *Planner) Plan(ctx context.Context, query string, dateHint *types.DateRange) types.SearchPlan {
	messages := []llm.Message{
		{Role: "system", Content: "You are a research planner."},
		{Role: "user", Content: renderPlanPrompt(query, dateHint)},
	}

	content, err := p.provider.Chat(ctx, messages)
	if err != nil {
		return fallbackPlan(query)
	}

	var parsed planJSON
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return fallbackPlan(query)
	}

	return types.SearchPlan{
		Keywords:   parsed.Keywords,
		Include:    parsed.Include,
		Exclude:    parsed.Exclude,
		DateWindow: parsed.DateWindow,
		Raw:        query,
	}
}

// fallbackPlan is the safe default used when the model output is unusable.
func fallbackPlan(query string) types.SearchPlan {
	return types.SearchPlan{
		Keywords: strings.Fields(query),
		Include:  []string{},
		Exclude:  []string{},
		Raw:      query,
	}
}
