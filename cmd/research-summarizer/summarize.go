// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-summarizer/internal/llm"
	"github.com/pdiddy/research-summarizer/internal/pipeline"
	"github.com/pdiddy/research-summarizer/internal/plan"
	"github.com/pdiddy/research-summarizer/internal/retrieve"
	"github.com/pdiddy/research-summarizer/internal/runlog"
	"github.com/pdiddy/research-summarizer/internal/search"
	"github.com/pdiddy/research-summarizer/internal/summarize"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Run the full pipeline: plan, retrieve, summarize, evaluate",
	Long: `Summarize turns a research question into a structured literature summary.
It plans the search with the configured chat model, retrieves and
deduplicates papers, generates the eight-field summary under a hard time
budget, and scores the result. Upstream failures degrade the output but
never abort the run.`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().String("query", "", "free-text research question (required, min 3 characters)")
	summarizeCmd.Flags().Int("n-papers", 8, "number of papers to summarize")
	summarizeCmd.Flags().String("from", "", "publication date range start (YYYY-MM-DD)")
	summarizeCmd.Flags().String("to", "", "publication date range end (YYYY-MM-DD)")
	summarizeCmd.Flags().StringSlice("sources", []string{"arxiv"}, "paper sources to query")
	summarizeCmd.Flags().Bool("json", false, "output the result as JSON")
	summarizeCmd.Flags().Bool("yaml", false, "output the result as YAML")
	summarizeCmd.Flags().Bool("log", false, "persist the run to the local run log")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	nPapers, _ := cmd.Flags().GetInt("n-papers")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	sources, _ := cmd.Flags().GetStringSlice("sources")
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	logRun, _ := cmd.Flags().GetBool("log")

	cfg := buildConfig(cmd)

	provider, err := llm.New(cfg.LLM)
	if err != nil {
		return err
	}

	var sink pipeline.Sink
	if logRun {
		store, err := runlog.NewStore(cfg.RunLog)
		if err != nil {
			return fmt.Errorf("opening run log: %w", err)
		}
		defer store.Close()
		sink = store
	}

	p := pipeline.New(
		plan.NewPlanner(provider),
		retrieve.NewRetriever(search.NewArxivSource(cfg.Search)),
		summarize.NewSummarizer(provider, cfg.Summary),
		sink,
		os.Stderr,
	)

	req := pipeline.Request{
		Query:     query,
		NPapers:   nPapers,
		Sources:   sources,
		DateRange: dateRange(from, to),
	}

	rec, err := p.Run(cmd.Context(), req)
	if err != nil {
		if errors.Is(err, pipeline.ErrQueryTooShort) {
			return fmt.Errorf("invalid query: %w", err)
		}
		return err
	}

	switch {
	case asJSON:
		return formatJSON(rec, os.Stdout)
	case asYAML:
		return formatYAML(rec, os.Stdout)
	default:
		formatRun(rec, os.Stdout)
		return nil
	}
}

// dateRange builds the optional date window from flag values.
func dateRange(from, to string) *types.DateRange {
	if from == "" && to == "" {
		return nil
	}
	return &types.DateRange{Start: from, End: to}
}
