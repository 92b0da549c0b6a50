// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

// planPromptTmpl instructs the model to produce the search-plan JSON.
var planPromptTmpl = template.Must(template.New("plan").Parse(`You are a research planning assistant.
User query: "{{.Query}}"
Create JSON:
- keywords: 5-8 search terms
- include: 2-4 phrases
- exclude: 0-3 phrases
- date_window: {"start": "YYYY-MM-DD", "end": "YYYY-MM-DD"} or null (prefer last 3 years)
{{- if .DateHint}}
Date hint: start {{.DateHint.Start}}, end {{.DateHint.End}}
{{- else}}
Date hint: none
{{- end}}
Return ONLY JSON.`))

// renderPlanPrompt executes the planning prompt template. Template execution
// over these inputs cannot fail; a render error still returns usable text.
func renderPlanPrompt(query string, dateHint *types.DateRange) string {
	var buf bytes.Buffer
	data := struct {
		Query    string
		DateHint *types.DateRange
	}{Query: query, DateHint: dateHint}
	if err := planPromptTmpl.Execute(&buf, data); err != nil {
		return "User query: " + query + "\nReturn ONLY JSON."
	}
	return buf.String()
}
