// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRef is a title/url pair referencing one paper inside a summary.
type PaperRef struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// StructuredSummary is the fixed eight-field summary schema. Every field is
// always present after normalization: list fields are empty slices rather
// than nil when the model omitted them, and Paragraphs is never empty.
// Callers must never branch on field absence.
type StructuredSummary struct {
	// Paragraphs holds 3-5 synthesis paragraphs. Defaults to a single
	// placeholder string when the model produced none.
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`

	// KeyFindings lists 5-8 technical findings.
	KeyFindings []string `json:"key_findings" yaml:"key_findings"`

	// Limitations lists 4-6 methodological or conceptual gaps.
	Limitations []string `json:"limitations" yaml:"limitations"`

	// FutureWork lists 4-6 important next steps.
	FutureWork []string `json:"future_work" yaml:"future_work"`

	// Methods lists 3-6 study or algorithm patterns.
	Methods []string `json:"methods" yaml:"methods"`

	// WhatsNew lists 3-5 novel contributions.
	WhatsNew []string `json:"whats_new" yaml:"whats_new"`

	// OpenProblems lists 3-5 unresolved research questions.
	OpenProblems []string `json:"open_problems" yaml:"open_problems"`

	// Top5Papers references the most important papers by title and URL.
	Top5Papers []PaperRef `json:"top5_papers" yaml:"top5_papers"`
}

// EvalScores holds the four deterministic quality scores for a summary.
// Each value lies in [0,1] and is rounded to 3 decimal places. Scores are
// derived per run from the paper list and summary, never persisted by the core.
type EvalScores struct {
	// Coverage is the fraction of papers whose qualifying title tokens all
	// appear in the summary text.
	Coverage float64 `json:"coverage" yaml:"coverage"`

	// Depth is the log-compressed paragraph length, saturating near 800 tokens.
	Depth float64 `json:"depth" yaml:"depth"`

	// Structure is the fraction of the six structured sections that are filled.
	Structure float64 `json:"structure" yaml:"structure"`

	// Overall is 0.4*Coverage + 0.3*Depth + 0.3*Structure.
	Overall float64 `json:"overall" yaml:"overall"`
}
