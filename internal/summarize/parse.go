// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"encoding/json"
	"regexp"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// braceSpanPattern matches the first brace-delimited span in noisy model
// output. Greedy and dot-matches-newline, so it captures from the first "{"
// to the last "}".
var braceSpanPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseSummaryObject extracts a JSON object from possibly noisy model
// output. Attempts, in order: strict decode of the full content (taking the
// first element if the value is an array), then a decode of the first
// brace-delimited span, then an empty object. Each attempt is total; this
// function never fails.
func parseSummaryObject(content string) map[string]any {
	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		span := braceSpanPattern.FindString(content)
		if span == "" {
			return map[string]any{}
		}
		if err := json.Unmarshal([]byte(span), &v); err != nil {
			return map[string]any{}
		}
	}

	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return map[string]any{}
		}
		v = arr[0]
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return obj
}

// normalizeSummary maps the parsed object onto the fixed schema. Each list
// field that is absent or not list-shaped becomes an empty slice; an empty
// Paragraphs is replaced with the single placeholder paragraph. This is a
// uniformity guarantee, not best-effort.
func normalizeSummary(obj map[string]any) types.StructuredSummary {
	s := types.StructuredSummary{
		Paragraphs:   stringList(obj, "paragraphs"),
		KeyFindings:  stringList(obj, "key_findings"),
		Limitations:  stringList(obj, "limitations"),
		FutureWork:   stringList(obj, "future_work"),
		Methods:      stringList(obj, "methods"),
		WhatsNew:     stringList(obj, "whats_new"),
		OpenProblems: stringList(obj, "open_problems"),
		Top5Papers:   paperRefList(obj, "top5_papers"),
	}
	if len(s.Paragraphs) == 0 {
		s.Paragraphs = []string{placeholderParagraph}
	}
	return s
}

// stringList returns the string items under key, or an empty slice when the
// value is absent or not a list. Non-string items are dropped.
func stringList(obj map[string]any, key string) []string {
	arr, ok := obj[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// paperRefList returns the title/url pairs under key, or an empty slice
// when the value is absent or not a list of objects.
func paperRefList(obj map[string]any, key string) []types.PaperRef {
	arr, ok := obj[key].([]any)
	if !ok {
		return []types.PaperRef{}
	}
	out := make([]types.PaperRef, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ref := types.PaperRef{}
		if t, ok := m["title"].(string); ok {
			ref.Title = t
		}
		if u, ok := m["url"].(string); ok {
			ref.URL = u
		}
		out = append(out, ref)
	}
	return out
}
