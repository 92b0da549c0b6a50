// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieve

import (
	"context"
	"fmt"
	"testing"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// stubSource returns canned papers and records what it was asked for.
type stubSource struct {
	name      string
	papers    []types.PaperRecord
	gotQuery  string
	gotMax    int
	callCount int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Search(_ context.Context, query string, maxResults int) []types.PaperRecord {
	s.gotQuery = query
	s.gotMax = maxResults
	s.callCount++
	return s.papers
}

func nPapers(n int) []types.PaperRecord {
	papers := make([]types.PaperRecord, n)
	for i := range papers {
		papers[i] = types.PaperRecord{Title: fmt.Sprintf("Paper %d", i), Source: "arxiv"}
	}
	return papers
}

func TestRetrieveTruncatesToN(t *testing.T) {
	src := &stubSource{name: "arxiv", papers: nPapers(20)}
	r := NewRetriever(src)

	got := r.Retrieve(context.Background(), types.SearchPlan{Keywords: []string{"ml"}}, 5, []string{"arxiv"})
	if len(got) != 5 {
		t.Errorf("len(got) = %d, want 5", len(got))
	}
}

func TestRetrieveOverFetches(t *testing.T) {
	tests := []struct {
		n       int
		wantMax int
	}{
		{8, 16},  // 2n when 2n >= 12
		{3, 12},  // floor of 12
		{6, 12},  // boundary: 2*6 == 12
		{100, 200},
	}
	for _, tt := range tests {
		src := &stubSource{name: "arxiv", papers: nPapers(3)}
		r := NewRetriever(src)

		r.Retrieve(context.Background(), types.SearchPlan{Keywords: []string{"x"}}, tt.n, []string{"arxiv"})
		if src.gotMax != tt.wantMax {
			t.Errorf("n=%d: requested %d candidates, want %d", tt.n, src.gotMax, tt.wantMax)
		}
	}
}

func TestRetrieveQueryFromKeywords(t *testing.T) {
	src := &stubSource{name: "arxiv"}
	r := NewRetriever(src)

	plan := types.SearchPlan{Keywords: []string{"federated", "learning"}, Raw: "original query"}
	r.Retrieve(context.Background(), plan, 4, []string{"arxiv"})
	if src.gotQuery != "federated learning" {
		t.Errorf("query = %q, want joined keywords", src.gotQuery)
	}
}

func TestRetrieveQueryFallsBackToRaw(t *testing.T) {
	src := &stubSource{name: "arxiv"}
	r := NewRetriever(src)

	plan := types.SearchPlan{Raw: "original query"}
	r.Retrieve(context.Background(), plan, 4, []string{"arxiv"})
	if src.gotQuery != "original query" {
		t.Errorf("query = %q, want raw query fallback", src.gotQuery)
	}
}

func TestRetrieveDeduplicatesAcrossSources(t *testing.T) {
	a := &stubSource{name: "arxiv", papers: []types.PaperRecord{
		{Title: "Shared Paper", URL: "http://a"},
		{Title: "Only In A"},
	}}
	b := &stubSource{name: "other", papers: []types.PaperRecord{
		{Title: "shared  paper", URL: "http://b"},
		{Title: "Only In B"},
	}}
	r := NewRetriever(a, b)

	got := r.Retrieve(context.Background(), types.SearchPlan{Keywords: []string{"x"}}, 10, []string{"arxiv", "other"})
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3 after dedup", len(got))
	}
	// First-seen record wins.
	if got[0].URL != "http://a" {
		t.Errorf("got[0].URL = %q, want the arxiv copy", got[0].URL)
	}
}

func TestRetrieveEmptySourcesReturnsEmpty(t *testing.T) {
	src := &stubSource{name: "arxiv", papers: nPapers(5)}
	r := NewRetriever(src)

	got := r.Retrieve(context.Background(), types.SearchPlan{Keywords: []string{"x"}}, 5, nil)
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0 for no enabled sources", len(got))
	}
	if src.callCount != 0 {
		t.Errorf("source called %d times, want 0", src.callCount)
	}
}

func TestRetrieveUnknownSourceTagSkipped(t *testing.T) {
	src := &stubSource{name: "arxiv", papers: nPapers(2)}
	r := NewRetriever(src)

	got := r.Retrieve(context.Background(), types.SearchPlan{Keywords: []string{"x"}}, 5, []string{"semantic_scholar"})
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0 for unknown tag", len(got))
	}
}

func TestRetrieveZeroResultsIsNotAnError(t *testing.T) {
	src := &stubSource{name: "arxiv"}
	r := NewRetriever(src)

	got := r.Retrieve(context.Background(), types.SearchPlan{Keywords: []string{"x"}}, 5, []string{"arxiv"})
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}
