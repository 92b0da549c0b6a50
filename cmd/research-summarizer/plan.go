// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-summarizer/internal/llm"
	"github.com/pdiddy/research-summarizer/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Derive a structured search plan from a research question",
	Long: `Plan sends the query to the configured chat model and prints the
resulting search plan: keywords, include/exclude phrases, and date window.
Malformed model output falls back to a plain keyword split.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("query", "", "free-text research question (required)")
	planCmd.Flags().String("from", "", "publication date range start (YYYY-MM-DD)")
	planCmd.Flags().String("to", "", "publication date range end (YYYY-MM-DD)")
	planCmd.Flags().Bool("yaml", false, "output the plan as YAML")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	cfg := buildConfig(cmd)

	provider, err := llm.New(cfg.LLM)
	if err != nil {
		return err
	}

	searchPlan := plan.NewPlanner(provider).Plan(cmd.Context(), query, dateRange(from, to))

	if asYAML {
		return formatYAML(searchPlan, os.Stdout)
	}
	return formatJSON(searchPlan, os.Stdout)
}
