// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the summarization pipeline:
// the search plan, paper records, the structured summary, evaluation scores,
// and the configuration passed into each stage.
package types

// PaperRecord is a single paper as returned by a paper source.
// Identity for deduplication is the canonical form of Title (lowercased,
// whitespace-collapsed), not URL: the same paper is often retrieved under
// slightly different URLs.
type PaperRecord struct {
	// Title is the paper title, whitespace-normalized by the source adapter.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year, or 0 when the source timestamp was
	// missing or malformed.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Abstract is the paper abstract or summary.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL is the HTML landing page for the paper (not the PDF link).
	URL string `json:"url" yaml:"url"`

	// Source identifies the backend that returned this record (e.g. "arxiv").
	Source string `json:"source" yaml:"source"`
}
