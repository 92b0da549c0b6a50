// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns a list of papers into the fixed eight-field
// structured summary. It is the pipeline's primary failure-absorption
// point: the model call runs under a hard wall-clock budget, the response
// is parsed through a layered fallback chain, and every field is
// normalized to a well-formed value. Summarize never returns an error.
package summarize

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/research-summarizer/internal/llm"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

const (
	// defaultBudget is the wall-clock limit on the model call.
	defaultBudget = 120 * time.Second

	// defaultMaxPapers caps how many papers enter the prompt context.
	defaultMaxPapers = 10

	// placeholderParagraph is substituted when normalization leaves
	// Paragraphs empty, so downstream consumers always have displayable text.
	placeholderParagraph = "Summary unavailable."
)

// Summarizer generates structured summaries via a chat provider.
type Summarizer struct {
	provider  llm.Provider
	budget    time.Duration
	maxPapers int
}

// NewSummarizer builds a summarizer from configuration.
func NewSummarizer(provider llm.Provider, cfg types.SummaryConfig) *Summarizer {
	budget := cfg.Budget
	if budget <= 0 {
		budget = defaultBudget
	}
	maxPapers := cfg.MaxPapers
	if maxPapers <= 0 {
		maxPapers = defaultMaxPapers
	}
	return &Summarizer{provider: provider, budget: budget, maxPapers: maxPapers}
}

// Summarize prompts the model over the given papers and normalizes its
// response. A call error or budget overrun short-circuits to a degraded
// summary whose first paragraph carries the error text; malformed model
// output degrades field by field. The returned summary always has all
// eight fields populated and a non-empty Paragraphs.
func (s *Summarizer) Summarize(ctx context.Context, papers []types.PaperRecord) types.StructuredSummary {
	messages := []llm.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: renderSummaryPrompt(buildContext(papers, s.maxPapers))},
	}

	content, err := s.chatWithBudget(ctx, messages)
	if err != nil {
		return degradedSummary(err)
	}

	return normalizeSummary(parseSummaryObject(content))
}

// chatResult carries one worker's outcome.
type chatResult struct {
	content string
	err     error
}

// chatWithBudget issues the model call on a worker goroutine and waits at
// most the configured budget. On timeout the worker's eventual result is
// abandoned; cancellation of the backing call is cooperative via context.
func (s *Summarizer) chatWithBudget(ctx context.Context, messages []llm.Message) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	ch := make(chan chatResult, 1)
	go func() {
		content, err := s.provider.Chat(cctx, messages)
		ch <- chatResult{content: content, err: err}
	}()

	select {
	case res := <-ch:
		return res.content, res.err
	case <-cctx.Done():
		return "", fmt.Errorf("model call exceeded %v budget: %w", s.budget, cctx.Err())
	}
}

// degradedSummary is the well-formed result for a failed or timed-out call:
// the error text as the only paragraph, every other field empty.
func degradedSummary(err error) types.StructuredSummary {
	return types.StructuredSummary{
		Paragraphs:   []string{fmt.Sprintf("Model error: %v", err)},
		KeyFindings:  []string{},
		Limitations:  []string{},
		FutureWork:   []string{},
		Methods:      []string{},
		WhatsNew:     []string{},
		OpenProblems: []string{},
		Top5Papers:   []types.PaperRef{},
	}
}

// buildContext renders the first maxPapers papers as numbered fixed-format
// blocks. With no papers it returns a literal marker so the prompt stays
// well-formed.
func buildContext(papers []types.PaperRecord, maxPapers int) string {
	if len(papers) > maxPapers {
		papers = papers[:maxPapers]
	}
	if len(papers) == 0 {
		return "No papers available."
	}

	blocks := make([]string, 0, len(papers))
	for i, p := range papers {
		year := ""
		if p.Year > 0 {
			year = strconv.Itoa(p.Year)
		}
		blocks = append(blocks, fmt.Sprintf("[%d] %s (%s)\nAUTHORS: %s\nABSTRACT: %s\nURL: %s",
			i+1,
			strings.TrimSpace(p.Title),
			year,
			strings.Join(p.Authors, ", "),
			strings.TrimSpace(p.Abstract),
			p.URL,
		))
	}
	return strings.Join(blocks, "\n\n")
}
