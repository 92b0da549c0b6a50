// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// formatJSON writes v as indented JSON to w.
func formatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatYAML writes v as YAML to w.
func formatYAML(v any, w io.Writer) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// formatRun writes a human-readable rendering of a completed run to w:
// the paper table, the summary sections, and the evaluation scores.
func formatRun(rec *types.RunRecord, w io.Writer) {
	formatPapers(rec.Papers, w)

	fmt.Fprintln(w)
	for _, p := range rec.Summary.Paragraphs {
		fmt.Fprintln(w, p)
		fmt.Fprintln(w)
	}

	formatSection(w, "Key findings", rec.Summary.KeyFindings)
	formatSection(w, "Limitations", rec.Summary.Limitations)
	formatSection(w, "Future work", rec.Summary.FutureWork)
	formatSection(w, "Methods", rec.Summary.Methods)
	formatSection(w, "What's new", rec.Summary.WhatsNew)
	formatSection(w, "Open problems", rec.Summary.OpenProblems)

	if len(rec.Summary.Top5Papers) > 0 {
		fmt.Fprintln(w, "Top papers:")
		for _, ref := range rec.Summary.Top5Papers {
			fmt.Fprintf(w, "  - %s (%s)\n", ref.Title, ref.URL)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Scores: coverage %.3f  depth %.3f  structure %.3f  overall %.3f\n",
		rec.Eval.Coverage, rec.Eval.Depth, rec.Eval.Structure, rec.Eval.Overall)
	fmt.Fprintf(w, "Elapsed: %v\n", rec.Elapsed.Round(time.Millisecond))
}

// formatPapers writes the retrieved papers as a human-readable table.
func formatPapers(papers []types.PaperRecord, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-4s  %s\n",
		"Rank", "Title", "Authors", "Year", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, p := range papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		year := ""
		if p.Year > 0 {
			year = fmt.Sprintf("%d", p.Year)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-4s  %s\n",
			i+1, title, formatAuthors(p.Authors), year, p.Source)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// formatSection writes one labeled summary list, skipping empty sections.
func formatSection(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
	fmt.Fprintln(w)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
