// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retrieve composes paper sources with deduplication: it builds a
// query string from the search plan, over-fetches from each enabled source
// to absorb dedup losses, and truncates to the requested count.
package retrieve

import (
	"context"
	"strings"

	"github.com/pdiddy/research-summarizer/internal/search"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

// Retriever fans a plan out to its registered sources by tag.
type Retriever struct {
	sources map[string]search.Source
}

// NewRetriever builds a retriever over the given sources, keyed by Name().
func NewRetriever(sources ...search.Source) *Retriever {
	m := make(map[string]search.Source, len(sources))
	for _, s := range sources {
		m[s.Name()] = s
	}
	return &Retriever{sources: m}
}

// Retrieve fetches up to n deduplicated papers for the plan from the enabled
// source tags. Each source is asked for max(2n, 12) candidates so dedup
// losses do not starve the result. Unknown tags are skipped; zero enabled
// sources or zero results yield an empty slice, never an error.
func (r *Retriever) Retrieve(ctx context.Context, plan types.SearchPlan, n int, sources []string) []types.PaperRecord {
	if n <= 0 {
		return []types.PaperRecord{}
	}

	query := strings.Join(plan.Keywords, " ")
	if query == "" {
		query = plan.Raw
	}

	perSource := 2 * n
	if perSource < 12 {
		perSource = 12
	}

	var papers []types.PaperRecord
	for _, tag := range sources {
		src, ok := r.sources[tag]
		if !ok {
			continue
		}
		papers = append(papers, src.Search(ctx, query, perSource)...)
	}

	papers = search.Dedupe(papers)
	if len(papers) > n {
		papers = papers[:n]
	}
	return papers
}
