// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-summarizer/internal/retrieve"
	"github.com/pdiddy/research-summarizer/internal/search"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Retrieve deduplicated papers for a query",
	Long: `Search queries the enabled paper sources directly (no model call),
deduplicates results by canonical title, and prints the top matches. This
is the retrieval stage of the pipeline in isolation.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "free-text search terms (required)")
	searchCmd.Flags().Int("n-papers", 8, "maximum number of papers to return")
	searchCmd.Flags().StringSlice("sources", []string{"arxiv"}, "paper sources to query")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	nPapers, _ := cmd.Flags().GetInt("n-papers")
	sources, _ := cmd.Flags().GetStringSlice("sources")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg := buildConfig(cmd)

	// A raw keyword plan, no model involvement.
	searchPlan := types.SearchPlan{
		Keywords: strings.Fields(query),
		Raw:      query,
	}

	retriever := retrieve.NewRetriever(search.NewArxivSource(cfg.Search))
	papers := retriever.Retrieve(cmd.Context(), searchPlan, nPapers, sources)

	if asJSON {
		return formatJSON(papers, os.Stdout)
	}
	formatPapers(papers, os.Stdout)
	return nil
}
