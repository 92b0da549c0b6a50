// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/research-summarizer/internal/llm"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

// fakeProvider returns a canned response or error and records the messages.
type fakeProvider struct {
	response string
	err      error
	messages []llm.Message
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Chat(_ context.Context, messages []llm.Message) (string, error) {
	f.messages = messages
	return f.response, f.err
}

func TestPlanParsesModelJSON(t *testing.T) {
	provider := &fakeProvider{
		response: `{"keywords":["federated","learning","privacy"],` +
			`"include":["differential privacy"],` +
			`"exclude":["survey"],` +
			`"date_window":{"start":"2022-01-01","end":"2025-01-01"}}`,
	}
	p := NewPlanner(provider)

	got := p.Plan(context.Background(), "federated learning privacy", nil)

	if len(got.Keywords) != 3 || got.Keywords[0] != "federated" {
		t.Errorf("Keywords = %v, want model keywords in order", got.Keywords)
	}
	if len(got.Include) != 1 || got.Include[0] != "differential privacy" {
		t.Errorf("Include = %v", got.Include)
	}
	if len(got.Exclude) != 1 || got.Exclude[0] != "survey" {
		t.Errorf("Exclude = %v", got.Exclude)
	}
	if got.DateWindow == nil || got.DateWindow.Start != "2022-01-01" {
		t.Errorf("DateWindow = %+v, want parsed window", got.DateWindow)
	}
	if got.Raw != "federated learning privacy" {
		t.Errorf("Raw = %q, want original query", got.Raw)
	}
}

func TestPlanMalformedJSONFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose", "I think you should search for federated learning papers."},
		{"truncated", `{"keywords":["federated","lear`},
		{"wrong shape", `{"keywords":"not a list"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlanner(&fakeProvider{response: tt.response})

			got := p.Plan(context.Background(), "federated learning", nil)

			want := []string{"federated", "learning"}
			if len(got.Keywords) != len(want) || got.Keywords[0] != want[0] || got.Keywords[1] != want[1] {
				t.Errorf("Keywords = %v, want %v", got.Keywords, want)
			}
			if len(got.Include) != 0 || len(got.Exclude) != 0 {
				t.Errorf("Include/Exclude = %v/%v, want empty", got.Include, got.Exclude)
			}
			if got.DateWindow != nil {
				t.Errorf("DateWindow = %+v, want nil", got.DateWindow)
			}
		})
	}
}

func TestPlanProviderErrorFallsBack(t *testing.T) {
	p := NewPlanner(&fakeProvider{err: fmt.Errorf("backend down")})

	got := p.Plan(context.Background(), "graph transformers", nil)

	if len(got.Keywords) != 2 || got.Keywords[0] != "graph" {
		t.Errorf("Keywords = %v, want whitespace split of query", got.Keywords)
	}
}

func TestPlanSendsOneCallWithDateHint(t *testing.T) {
	provider := &fakeProvider{response: `{}`}
	p := NewPlanner(provider)

	hint := &types.DateRange{Start: "2023-01-01", End: "2024-01-01"}
	p.Plan(context.Background(), "diffusion models", hint)

	if len(provider.messages) != 2 {
		t.Fatalf("len(messages) = %d, want system + user", len(provider.messages))
	}
	user := provider.messages[1].Content
	if !strings.Contains(user, `"diffusion models"`) {
		t.Errorf("prompt missing query: %q", user)
	}
	if !strings.Contains(user, "2023-01-01") {
		t.Errorf("prompt missing date hint: %q", user)
	}
}
