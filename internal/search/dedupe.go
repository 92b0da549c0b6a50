// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// CanonicalTitle returns the deduplication key for a paper title: lowercased
// with all whitespace runs collapsed to single spaces. URLs are deliberately
// not part of the key; the same paper often appears under different URLs.
func CanonicalTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// Dedupe removes papers whose canonical title was already seen, preserving
// first-occurrence order. It is idempotent and O(n).
func Dedupe(papers []types.PaperRecord) []types.PaperRecord {
	seen := make(map[string]bool, len(papers))
	out := make([]types.PaperRecord, 0, len(papers))
	for _, p := range papers {
		key := CanonicalTitle(p.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
