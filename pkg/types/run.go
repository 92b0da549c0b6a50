// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunRecord bundles the four intermediate artifacts of one pipeline run
// plus the elapsed wall-clock time, in the shape handed to a run-log sink.
// The core produces these; persistence is a collaborator concern.
type RunRecord struct {
	// Query is the original user query.
	Query string `json:"query" yaml:"query"`

	// Plan is the search plan derived from the query.
	Plan SearchPlan `json:"plan" yaml:"plan"`

	// Papers is the deduplicated retrieval result.
	Papers []PaperRecord `json:"papers" yaml:"papers"`

	// Summary is the normalized structured summary.
	Summary StructuredSummary `json:"summary" yaml:"summary"`

	// Eval holds the deterministic quality scores for Summary.
	Eval EvalScores `json:"eval" yaml:"eval"`

	// Elapsed is the wall-clock duration of the whole pipeline run.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}
