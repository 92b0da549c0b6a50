// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-summarizer/internal/runlog"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List logged summarization runs",
	Long: `Runs lists recent entries from the local run log, newest first:
query, paper count, elapsed time, and evaluation scores.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	runsCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg := buildConfig(cmd)

	store, err := runlog.NewStore(cfg.RunLog)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if asJSON {
		return formatJSON(entries, os.Stdout)
	}

	if len(entries) == 0 {
		fmt.Println("No runs logged.")
		return nil
	}

	fmt.Printf("%-25s  %-40s  %-6s  %-10s  %s\n",
		"When", "Query", "Papers", "Elapsed", "Overall")
	fmt.Println(strings.Repeat("-", 95))
	for _, e := range entries {
		query := e.Query
		if len(query) > 40 {
			query = query[:37] + "..."
		}
		fmt.Printf("%-25s  %-40s  %-6d  %-10s  %.3f\n",
			e.CreatedAt, query, e.NumPapers, fmt.Sprintf("%dms", e.ElapsedMS), e.Eval.Overall)
	}
	return nil
}
