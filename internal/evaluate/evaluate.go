// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluate computes deterministic, interpretable quality scores for
// a structured summary. Evaluate is a pure function: no I/O, no model call,
// identical inputs always produce identical scores.
package evaluate

import (
	"math"
	"strings"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// depthSaturationTokens is where the depth curve reaches 1.0: paragraphs of
// roughly this many tokens score full depth, with diminishing returns below.
const depthSaturationTokens = 800

// score weights for the overall combination.
const (
	coverageWeight  = 0.4
	depthWeight     = 0.3
	structureWeight = 0.3
)

// Evaluate scores a summary against the papers it was generated from.
// All four values lie in [0,1] and are rounded to 3 decimal places.
func Evaluate(summary types.StructuredSummary, papers []types.PaperRecord) types.EvalScores {
	coverage := coverageScore(summary, papers)
	depth := depthScore(summary)
	structure := structureScore(summary)
	overall := coverageWeight*coverage + depthWeight*depth + structureWeight*structure

	return types.EvalScores{
		Coverage:  round3(coverage),
		Depth:     round3(depth),
		Structure: round3(structure),
		Overall:   round3(overall),
	}
}

// summaryText assembles the lowercase match surface: all paragraphs plus all
// items of the six list sections, space-joined. Top5Papers is excluded.
func summaryText(summary types.StructuredSummary) string {
	parts := append([]string{}, summary.Paragraphs...)
	for _, sec := range listSections(summary) {
		parts = append(parts, sec...)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// listSections returns the six structured list fields in fixed order.
func listSections(summary types.StructuredSummary) [][]string {
	return [][]string{
		summary.KeyFindings,
		summary.Limitations,
		summary.FutureWork,
		summary.Methods,
		summary.WhatsNew,
		summary.OpenProblems,
	}
}

// coverageScore is the fraction of papers whose qualifying title tokens all
// appear as substrings of the summary text. Per paper, up to 2 title tokens
// longer than 4 characters qualify; a paper with none never counts as a hit.
// The match is strict conjunction, not fractional credit. An empty paper
// list scores 0.0.
func coverageScore(summary types.StructuredSummary, papers []types.PaperRecord) float64 {
	if len(papers) == 0 {
		return 0.0
	}

	text := summaryText(summary)
	hits := 0
	for _, p := range papers {
		tokens := qualifyingTokens(p.Title)
		if len(tokens) == 0 {
			continue
		}
		covered := true
		for _, tok := range tokens {
			if !strings.Contains(text, tok) {
				covered = false
				break
			}
		}
		if covered {
			hits++
		}
	}
	return float64(hits) / float64(len(papers))
}

// qualifyingTokens returns up to 2 lowercase title tokens longer than 4
// characters, in title order.
func qualifyingTokens(title string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(title)) {
		if len(tok) > 4 {
			tokens = append(tokens, tok)
			if len(tokens) == 2 {
				break
			}
		}
	}
	return tokens
}

// depthScore compresses the paragraph token count through a log curve that
// saturates at depthSaturationTokens, clamped to [0,1].
func depthScore(summary types.StructuredSummary) float64 {
	tokens := len(strings.Fields(strings.Join(summary.Paragraphs, " ")))
	depth := math.Log1p(float64(tokens)) / math.Log1p(depthSaturationTokens)
	return math.Min(1.0, depth)
}

// structureScore is the fraction of the six list sections that are
// non-empty, a discrete score in multiples of 1/6.
func structureScore(summary types.StructuredSummary) float64 {
	sections := listSections(summary)
	filled := 0
	for _, sec := range sections {
		if len(sec) > 0 {
			filled++
		}
	}
	return float64(filled) / float64(len(sections))
}

// round3 rounds to 3 decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
