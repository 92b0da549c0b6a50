// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"text/template"
)

// summarySystemPrompt sets the reviewer persona for the summarization call.
const summarySystemPrompt = "You are an expert scientific reviewer. " +
	"You write deep, technically precise summaries for graduate-level readers."

// summaryPromptTmpl instructs the model to synthesize the papers into 3-5
// paragraphs plus the six labeled lists and top-5 references, returned as
// a single JSON object with exactly these eight keys.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`You are given several research papers (each labeled [#N]).

Write a deep, structured literature summary across ALL papers.

1. First, write 3-5 dense paragraphs that:
   - synthesize the main ideas,
   - compare methods,
   - highlight trade-offs and trends.

2. Then extract:
   - key_findings: 5-8 technical findings.
   - limitations: 4-6 methodological or conceptual gaps.
   - future_work: 4-6 important next steps.
   - methods: 3-6 study/algorithm patterns.
   - whats_new: 3-5 novel contributions.
   - open_problems: 3-5 unresolved research questions.
   - top5_papers: title + url.

Return ONLY valid JSON with this structure:

{
  "paragraphs": [],
  "key_findings": [],
  "limitations": [],
  "future_work": [],
  "methods": [],
  "whats_new": [],
  "open_problems": [],
  "top5_papers": []
}

PAPERS:
{{.Context}}`))

// renderSummaryPrompt executes the summary prompt template over the paper
// context. A render error still yields usable prompt text.
func renderSummaryPrompt(context string) string {
	var buf bytes.Buffer
	if err := summaryPromptTmpl.Execute(&buf, struct{ Context string }{Context: context}); err != nil {
		return "Summarize the following papers. Return ONLY valid JSON.\n\nPAPERS:\n" + context
	}
	return buf.String()
}
