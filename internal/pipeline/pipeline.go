// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the stages together: planner, retriever,
// summarizer, and evaluator run strictly in sequence, each stage's output
// feeding the next. A run holds no state beyond its own invocation, so
// concurrent runs are independent. The only error a caller can see is
// input validation; every downstream failure is absorbed into a degraded
// but well-formed result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/research-summarizer/internal/evaluate"
	"github.com/pdiddy/research-summarizer/internal/plan"
	"github.com/pdiddy/research-summarizer/internal/retrieve"
	"github.com/pdiddy/research-summarizer/internal/summarize"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

// ErrQueryTooShort rejects empty, whitespace-only, or sub-3-character
// queries before the pipeline is invoked. Callers surface it as a client
// error, not a pipeline failure.
var ErrQueryTooShort = errors.New("query must be at least 3 characters")

const (
	defaultNPapers = 8
	defaultSource  = "arxiv"
)

// Request holds the parameters of one summarization run.
type Request struct {
	// Query is the free-text research question. Trimmed length must be >= 3.
	Query string

	// NPapers is the number of papers to summarize (default 8).
	NPapers int

	// DateRange optionally restricts publication dates.
	DateRange *types.DateRange

	// Sources lists the enabled paper source tags (default {"arxiv"}).
	Sources []string
}

// Sink receives the completed run record so a collaborator can persist it.
// The core performs no persistence itself; sink failures are non-fatal.
type Sink interface {
	LogRun(ctx context.Context, rec types.RunRecord) error
}

// Pipeline executes summarization runs.
type Pipeline struct {
	planner    *plan.Planner
	retriever  *retrieve.Retriever
	summarizer *summarize.Summarizer
	sink       Sink
	warnings   io.Writer
}

// New builds a pipeline. sink may be nil (no run logging); w receives
// non-fatal warnings and may be io.Discard.
func New(planner *plan.Planner, retriever *retrieve.Retriever, summarizer *summarize.Summarizer, sink Sink, w io.Writer) *Pipeline {
	if w == nil {
		w = io.Discard
	}
	return &Pipeline{
		planner:    planner,
		retriever:  retriever,
		summarizer: summarizer,
		sink:       sink,
		warnings:   w,
	}
}

// Run executes one summarization: plan, retrieve, summarize, evaluate.
// It returns an error only for invalid input; upstream failures surface as
// degraded content inside a well-formed record. The completed record,
// including elapsed wall-clock time, is handed to the sink when one is set.
func (p *Pipeline) Run(ctx context.Context, req Request) (*types.RunRecord, error) {
	if len(strings.TrimSpace(req.Query)) < 3 {
		return nil, ErrQueryTooShort
	}

	nPapers := req.NPapers
	if nPapers <= 0 {
		nPapers = defaultNPapers
	}
	sources := req.Sources
	if len(sources) == 0 {
		sources = []string{defaultSource}
	}

	start := time.Now()

	searchPlan := p.planner.Plan(ctx, req.Query, req.DateRange)
	papers := p.retriever.Retrieve(ctx, searchPlan, nPapers, sources)
	summary := p.summarizer.Summarize(ctx, papers)
	scores := evaluate.Evaluate(summary, papers)

	rec := &types.RunRecord{
		Query:   req.Query,
		Plan:    searchPlan,
		Papers:  papers,
		Summary: summary,
		Eval:    scores,
		Elapsed: time.Since(start),
	}

	if p.sink != nil {
		if err := p.sink.LogRun(ctx, *rec); err != nil {
			fmt.Fprintf(p.warnings, "warning: run log failed: %v\n", err)
		}
	}

	return rec, nil
}
