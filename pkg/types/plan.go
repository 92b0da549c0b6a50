// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DateRange is an optional publication date window, ISO dates (YYYY-MM-DD).
type DateRange struct {
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}

// SearchPlan is the structured search plan derived from a free-text query.
// It is produced once per request by the planner and immutable thereafter.
type SearchPlan struct {
	// Keywords are the search terms, in planner order.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Include lists phrases the results should contain.
	Include []string `json:"include" yaml:"include"`

	// Exclude lists phrases the results should avoid.
	Exclude []string `json:"exclude" yaml:"exclude"`

	// DateWindow restricts publication dates, or nil for no restriction.
	DateWindow *DateRange `json:"date_window" yaml:"date_window"`

	// Raw is the original user query, kept so the retriever can fall back
	// to it when the plan carries no keywords.
	Raw string `json:"raw" yaml:"raw"`
}
